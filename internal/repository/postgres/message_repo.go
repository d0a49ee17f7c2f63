package postgres

import (
	"context"
	"errors"

	"go-alumni-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type messageRepo struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) domain.MessageRepository {
	return &messageRepo{db: db}
}

// FindConversation looks up the conversation between two users regardless of
// which side created it.
func (r *messageRepo) FindConversation(ctx context.Context, userA, userB string) (*domain.Conversation, error) {
	query := `
		SELECT id, user_a, user_b, last_message_at, created_at
		FROM conversations
		WHERE (user_a = $1 AND user_b = $2) OR (user_a = $2 AND user_b = $1)
		LIMIT 1`
	var c domain.Conversation
	err := r.db.QueryRow(ctx, query, userA, userB).Scan(
		&c.ID, &c.UserA, &c.UserB, &c.LastMessageAt, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *messageRepo) CreateConversation(ctx context.Context, conv *domain.Conversation) error {
	query := `
		INSERT INTO conversations (id, user_a, user_b, last_message_at, created_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING last_message_at, created_at`
	return r.db.QueryRow(ctx, query, conv.ID, conv.UserA, conv.UserB).
		Scan(&conv.LastMessageAt, &conv.CreatedAt)
}

func (r *messageRepo) GetConversation(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	var c domain.Conversation
	err := r.db.QueryRow(ctx, `
		SELECT id, user_a, user_b, last_message_at, created_at
		FROM conversations WHERE id = $1`, id,
	).Scan(&c.ID, &c.UserA, &c.UserB, &c.LastMessageAt, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// ListConversations returns the caller's conversations newest first, with the
// peer profile summary, unread count and last message preview.
func (r *messageRepo) ListConversations(ctx context.Context, userID string) ([]domain.Conversation, error) {
	query := `
		SELECT c.id, c.user_a, c.user_b, c.last_message_at, c.created_at,
		       p.user_id, p.name, COALESCE(p.graduation_year, 0), COALESCE(p.degree, ''), COALESCE(p.major, ''),
		       COALESCE(p.current_title, ''), COALESCE(p.current_company, ''), COALESCE(p.avatar_url, ''),
		       COALESCE(u.unread, 0),
		       COALESCE(lm.body, '')
		FROM conversations c
		JOIN alumni_profiles p
		  ON p.user_id = CASE WHEN c.user_a = $1 THEN c.user_b ELSE c.user_a END
		LEFT JOIN (
			SELECT conversation_id, COUNT(*) AS unread
			FROM messages
			WHERE read = FALSE AND sender_id <> $1
			GROUP BY conversation_id
		) u ON u.conversation_id = c.id
		LEFT JOIN LATERAL (
			SELECT body FROM messages m
			WHERE m.conversation_id = c.id
			ORDER BY m.created_at DESC LIMIT 1
		) lm ON TRUE
		WHERE c.user_a = $1 OR c.user_b = $1
		ORDER BY c.last_message_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	convs := []domain.Conversation{}
	for rows.Next() {
		var c domain.Conversation
		var peer domain.ProfileSummary
		if err := rows.Scan(
			&c.ID, &c.UserA, &c.UserB, &c.LastMessageAt, &c.CreatedAt,
			&peer.UserID, &peer.Name, &peer.GraduationYear, &peer.Degree, &peer.Major,
			&peer.CurrentTitle, &peer.CurrentCompany, &peer.AvatarURL,
			&c.UnreadCount,
			&c.LastMessage,
		); err != nil {
			return nil, err
		}
		c.Peer = &peer
		convs = append(convs, c)
	}
	return convs, rows.Err()
}

func (r *messageRepo) InsertMessage(ctx context.Context, msg *domain.Message) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO messages (id, conversation_id, sender_id, body, read, created_at)
		VALUES ($1, $2, $3, $4, FALSE, NOW())
		RETURNING created_at`,
		msg.ID, msg.ConversationID, msg.SenderID, msg.Body,
	).Scan(&msg.CreatedAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE conversations SET last_message_at = NOW() WHERE id = $1`, msg.ConversationID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *messageRepo) ListMessages(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]domain.Message, error) {
	query := `
		SELECT id, conversation_id, sender_id, body, read, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, conversationID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := []domain.Message{}
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Body, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// MarkRead flags every message the other party sent as read.
func (r *messageRepo) MarkRead(ctx context.Context, conversationID uuid.UUID, readerID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE messages SET read = TRUE
		WHERE conversation_id = $1 AND sender_id <> $2 AND read = FALSE`,
		conversationID, readerID)
	return err
}

// UnreadCount counts unread messages addressed to the user across all of
// their conversations. Backs the navbar badge.
func (r *messageRepo) UnreadCount(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM messages m
		JOIN conversations c ON c.id = m.conversation_id
		WHERE (c.user_a = $1 OR c.user_b = $1)
		  AND m.sender_id <> $1
		  AND m.read = FALSE`,
		userID).Scan(&n)
	return n, err
}
