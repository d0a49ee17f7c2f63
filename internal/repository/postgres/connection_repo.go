package postgres

import (
	"context"
	"errors"

	"go-alumni-backend/internal/domain"
	"go-alumni-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type connectionRepo struct {
	db *pgxpool.Pool
}

func NewConnectionRepository(db *pgxpool.Pool) domain.ConnectionRepository {
	return &connectionRepo{db: db}
}

func (r *connectionRepo) Create(ctx context.Context, conn *domain.Connection) error {
	query := `
		INSERT INTO connections (id, requester_id, recipient_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		conn.ID, conn.RequesterID, conn.RecipientID, conn.Status,
	).Scan(&conn.CreatedAt, &conn.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("A connection between these users already exists")
		}
		return err
	}
	return nil
}

func (r *connectionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Connection, error) {
	query := `
		SELECT id, requester_id, recipient_id, status, created_at, updated_at
		FROM connections WHERE id = $1`
	var c domain.Connection
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.RequesterID, &c.RecipientID, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// FindBetween looks up a connection in either direction.
func (r *connectionRepo) FindBetween(ctx context.Context, userA, userB string) (*domain.Connection, error) {
	query := `
		SELECT id, requester_id, recipient_id, status, created_at, updated_at
		FROM connections
		WHERE (requester_id = $1 AND recipient_id = $2)
		   OR (requester_id = $2 AND recipient_id = $1)
		LIMIT 1`
	var c domain.Connection
	err := r.db.QueryRow(ctx, query, userA, userB).Scan(
		&c.ID, &c.RequesterID, &c.RecipientID, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *connectionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ConnectionStatus) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE connections SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *connectionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM connections WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const connectionWithPeer = `
	SELECT c.id, c.requester_id, c.recipient_id, c.status, c.created_at, c.updated_at,
	       p.user_id, p.name, COALESCE(p.graduation_year, 0), COALESCE(p.degree, ''), COALESCE(p.major, ''),
	       COALESCE(p.current_title, ''), COALESCE(p.current_company, ''), COALESCE(p.avatar_url, '')
	FROM connections c
	JOIN alumni_profiles p
	  ON p.user_id = CASE WHEN c.requester_id = $1 THEN c.recipient_id ELSE c.requester_id END`

func scanConnectionsWithPeer(rows pgx.Rows) ([]domain.Connection, error) {
	defer rows.Close()
	conns := []domain.Connection{}
	for rows.Next() {
		var c domain.Connection
		var peer domain.ProfileSummary
		if err := rows.Scan(
			&c.ID, &c.RequesterID, &c.RecipientID, &c.Status, &c.CreatedAt, &c.UpdatedAt,
			&peer.UserID, &peer.Name, &peer.GraduationYear, &peer.Degree, &peer.Major,
			&peer.CurrentTitle, &peer.CurrentCompany, &peer.AvatarURL,
		); err != nil {
			return nil, err
		}
		c.Peer = &peer
		conns = append(conns, c)
	}
	return conns, rows.Err()
}

func (r *connectionRepo) ListByUser(ctx context.Context, userID string, status domain.ConnectionStatus) ([]domain.Connection, error) {
	query := connectionWithPeer + `
		WHERE (c.requester_id = $1 OR c.recipient_id = $1)`
	args := []interface{}{userID}
	if status != "" {
		query += ` AND c.status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY c.updated_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanConnectionsWithPeer(rows)
}

func (r *connectionRepo) ListIncomingPending(ctx context.Context, userID string) ([]domain.Connection, error) {
	query := connectionWithPeer + `
		WHERE c.recipient_id = $1 AND c.status = 'pending'
		ORDER BY c.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return scanConnectionsWithPeer(rows)
}

func (r *connectionRepo) CountPending(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM connections WHERE status = 'pending'`).Scan(&n)
	return n, err
}
