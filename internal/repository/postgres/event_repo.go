package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-alumni-backend/internal/domain"
	"go-alumni-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type eventRepo struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) domain.EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (id, created_by, title, description, location, virtual, meeting_link,
		                    starts_at, ends_at, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		event.ID, event.CreatedBy, event.Title, event.Description, event.Location,
		event.Virtual, event.MeetingLink, event.StartsAt, event.EndsAt, event.Capacity,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
}

const eventColumns = `
	e.id, e.created_by, e.title, e.description, COALESCE(e.location, ''),
	e.virtual, e.meeting_link, e.starts_at, e.ends_at, e.capacity,
	e.created_at, e.updated_at,
	COALESCE(g.going, 0), COALESCE(g.maybe, 0)`

const eventCountsJoin = `
	LEFT JOIN (
		SELECT event_id,
		       COUNT(*) FILTER (WHERE status = 'going') AS going,
		       COUNT(*) FILTER (WHERE status = 'maybe') AS maybe
		FROM event_rsvps GROUP BY event_id
	) g ON g.event_id = e.id`

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.CreatedBy, &e.Title, &e.Description, &e.Location,
		&e.Virtual, &e.MeetingLink, &e.StartsAt, &e.EndsAt, &e.Capacity,
		&e.CreatedAt, &e.UpdatedAt,
		&e.GoingCount, &e.MaybeCount,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *eventRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events e` + eventCountsJoin + ` WHERE e.id = $1`
	e, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepo) FetchUpcoming(ctx context.Context, limit, offset int) ([]domain.Event, int64, error) {
	query := `SELECT ` + eventColumns + ` FROM events e` + eventCountsJoin + `
		WHERE e.ends_at > NOW()
		ORDER BY e.starts_at ASC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events WHERE ends_at > NOW()`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *eventRepo) FetchByAttendee(ctx context.Context, userID string, limit, offset int) ([]domain.Event, int64, error) {
	query := `SELECT ` + eventColumns + `, rv.status FROM events e` + eventCountsJoin + `
		JOIN event_rsvps rv ON rv.event_id = e.id AND rv.user_id = $1
		WHERE rv.status IN ('going', 'maybe')
		ORDER BY e.starts_at ASC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		var e domain.Event
		var status domain.RSVPStatus
		err := rows.Scan(
			&e.ID, &e.CreatedBy, &e.Title, &e.Description, &e.Location,
			&e.Virtual, &e.MeetingLink, &e.StartsAt, &e.EndsAt, &e.Capacity,
			&e.CreatedAt, &e.UpdatedAt,
			&e.GoingCount, &e.MaybeCount,
			&status,
		)
		if err != nil {
			return nil, 0, err
		}
		e.MyRSVP = &status
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM event_rsvps WHERE user_id = $1 AND status IN ('going', 'maybe')`
	if err := r.db.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *eventRepo) Update(ctx context.Context, event *domain.Event) error {
	query := `
		UPDATE events SET
			title = $2, description = $3, location = $4, virtual = $5, meeting_link = $6,
			starts_at = $7, ends_at = $8, capacity = $9, updated_at = NOW()
		WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query,
		event.ID, event.Title, event.Description, event.Location, event.Virtual,
		event.MeetingLink, event.StartsAt, event.EndsAt, event.Capacity,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpsertRSVP writes the RSVP, checking capacity inside the transaction so two
// concurrent "going" RSVPs cannot both squeeze past the limit.
func (r *eventRepo) UpsertRSVP(ctx context.Context, rsvp *domain.RSVP, capacity int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if rsvp.Status == domain.RSVPGoing && capacity > 0 {
		// Lock the event row so concurrent RSVPs serialize on the count check.
		var locked uuid.UUID
		if err := tx.QueryRow(ctx, `SELECT id FROM events WHERE id = $1 FOR UPDATE`, rsvp.EventID).Scan(&locked); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			return err
		}

		var going int
		err := tx.QueryRow(ctx, `
			SELECT COUNT(*) FROM event_rsvps
			WHERE event_id = $1 AND status = 'going' AND user_id <> $2`,
			rsvp.EventID, rsvp.UserID,
		).Scan(&going)
		if err != nil {
			return fmt.Errorf("failed to count attendees: %w", err)
		}
		if going >= capacity {
			return apperror.Conflict("Event is at capacity")
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO event_rsvps (event_id, user_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (event_id, user_id) DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = NOW()`,
		rsvp.EventID, rsvp.UserID, rsvp.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert rsvp: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *eventRepo) GetRSVP(ctx context.Context, eventID uuid.UUID, userID string) (*domain.RSVP, error) {
	var rv domain.RSVP
	err := r.db.QueryRow(ctx, `
		SELECT event_id, user_id, status, created_at, updated_at
		FROM event_rsvps WHERE event_id = $1 AND user_id = $2`,
		eventID, userID,
	).Scan(&rv.EventID, &rv.UserID, &rv.Status, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rv, nil
}

func (r *eventRepo) CountUpcoming(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events WHERE ends_at > NOW()`).Scan(&n)
	return n, err
}
