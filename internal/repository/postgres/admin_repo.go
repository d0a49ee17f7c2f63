package postgres

import (
	"context"
	"time"

	"go-alumni-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type adminRepo struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) domain.AdminRepository {
	return &adminRepo{db: db}
}

// GetStats fetches dashboard statistics. Individual counters are best-effort:
// a failed query leaves the counter at zero rather than failing the dashboard.
func (r *adminRepo) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	stats := &domain.AdminStats{
		SystemHealth: domain.SystemHealth{
			Status:      "healthy",
			LastChecked: time.Now().Format(time.RFC3339),
		},
	}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&stats.TotalUsers); err != nil {
		// If even this fails, the database is in trouble
		stats.SystemHealth.Status = "degraded"
	}

	_ = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = 'admin'`).Scan(&stats.UsersByRole.Admin)
	_ = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = 'alumni'`).Scan(&stats.UsersByRole.Alumni)

	_ = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM alumni_profiles WHERE profile_completed = TRUE`).Scan(&stats.CompletedProfiles)
	_ = r.db.QueryRow(ctx, `SELECT COALESCE(AVG(profile_completion_percentage), 0) FROM alumni_profiles`).Scan(&stats.AvgCompletion)

	_ = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&stats.TotalJobs)
	_ = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE active = TRUE`).Scan(&stats.ActiveJobs)

	_ = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events WHERE ends_at > NOW()`).Scan(&stats.UpcomingEvents)
	_ = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM connections WHERE status = 'pending'`).Scan(&stats.PendingConnections)

	return stats, nil
}

// ListUsers fetches paginated users with optional role filter, joined with
// the persisted completion columns for the portal's user table.
func (r *adminRepo) ListUsers(ctx context.Context, role string, page, pageSize int) ([]domain.AdminUser, int64, error) {
	offset := (page - 1) * pageSize

	countQuery := `SELECT COUNT(*) FROM users`
	countArgs := []interface{}{}
	if role != "" {
		countQuery += ` WHERE role = $1`
		countArgs = append(countArgs, role)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT u.id, u.email, COALESCE(p.name, ''), u.role, NOT u.active,
		       COALESCE(p.profile_completion_percentage, 0), COALESCE(p.profile_completed, FALSE),
		       u.created_at, u.updated_at
		FROM users u
		LEFT JOIN alumni_profiles p ON p.user_id = u.id`
	args := []interface{}{}
	if role != "" {
		query += ` WHERE u.role = $1 ORDER BY u.created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, role, pageSize, offset)
	} else {
		query += ` ORDER BY u.created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, pageSize, offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []domain.AdminUser{}
	for rows.Next() {
		var u domain.AdminUser
		var createdAt, updatedAt time.Time
		if err := rows.Scan(
			&u.ID, &u.Email, &u.Name, &u.Role, &u.IsDisabled,
			&u.CompletionPercentage, &u.ProfileCompleted,
			&createdAt, &updatedAt,
		); err != nil {
			return nil, 0, err
		}
		u.CreatedAt = createdAt.Format(time.RFC3339)
		u.UpdatedAt = updatedAt.Format(time.RFC3339)
		users = append(users, u)
	}
	return users, total, rows.Err()
}

func (r *adminRepo) DisableUser(ctx context.Context, userID string, disable bool) error {
	cmd, err := r.db.Exec(ctx,
		`UPDATE users SET active = $2, updated_at = NOW() WHERE id = $1`, userID, !disable)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *adminRepo) DeleteUser(ctx context.Context, userID string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
