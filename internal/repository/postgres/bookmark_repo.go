package postgres

import (
	"context"
	"errors"

	"go-alumni-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type bookmarkRepo struct {
	db *pgxpool.Pool
}

func NewBookmarkRepository(db *pgxpool.Pool) domain.BookmarkRepository {
	return &bookmarkRepo{db: db}
}

func (r *bookmarkRepo) Insert(ctx context.Context, b *domain.Bookmark) error {
	query := `
		INSERT INTO bookmarks (user_id, entity_type, entity_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query, b.UserID, b.Type, b.EntityID).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			// Already bookmarked; treat as a no-op
			return nil
		}
		return err
	}
	return nil
}

func (r *bookmarkRepo) Delete(ctx context.Context, userID string, t domain.BookmarkType, entityID string) (bool, error) {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM bookmarks WHERE user_id = $1 AND entity_type = $2 AND entity_id = $3`,
		userID, t, entityID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *bookmarkRepo) Exists(ctx context.Context, userID string, t domain.BookmarkType, entityID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM bookmarks WHERE user_id = $1 AND entity_type = $2 AND entity_id = $3)`,
		userID, t, entityID).Scan(&exists)
	return exists, err
}

func (r *bookmarkRepo) ListByUser(ctx context.Context, userID string, t domain.BookmarkType) ([]domain.Bookmark, error) {
	query := `
		SELECT id, user_id, entity_type, entity_id, created_at
		FROM bookmarks
		WHERE user_id = $1 AND entity_type = $2
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID, t)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookmarks := []domain.Bookmark{}
	for rows.Next() {
		var b domain.Bookmark
		if err := rows.Scan(&b.ID, &b.UserID, &b.Type, &b.EntityID, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}
