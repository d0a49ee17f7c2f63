package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go-alumni-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `
	id, user_id, name, email,
	COALESCE(phone, ''), COALESCE(location, ''), COALESCE(bio, ''),
	COALESCE(graduation_year, 0), COALESCE(degree, ''), COALESCE(major, ''),
	COALESCE(current_title, ''), COALESCE(current_company, ''),
	COALESCE(linkedin_url, ''), COALESCE(github_url, ''), COALESCE(website_url, ''),
	COALESCE(avatar_url, ''), skills, interests,
	profile_completion_percentage, profile_completed,
	created_at, updated_at`

func scanProfile(row pgx.Row) (*domain.AlumniProfile, error) {
	var p domain.AlumniProfile
	var skills, interests []string
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Email,
		&p.Phone, &p.Location, &p.Bio,
		&p.GraduationYear, &p.Degree, &p.Major,
		&p.CurrentTitle, &p.CurrentCompany,
		&p.LinkedinURL, &p.GithubURL, &p.WebsiteURL,
		&p.AvatarURL, pq.Array(&skills), pq.Array(&interests),
		&p.CompletionPercentage, &p.ProfileCompleted,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Skills = skills
	p.Interests = interests
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Interests == nil {
		p.Interests = []string{}
	}
	return &p, nil
}

func (r *profileRepo) Create(ctx context.Context, profile *domain.AlumniProfile) error {
	query := `
		INSERT INTO alumni_profiles (
			user_id, name, email, skills, interests,
			profile_completion_percentage, profile_completed,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.Name, profile.Email,
		pq.Array(profile.Skills), pq.Array(profile.Interests),
		profile.CompletionPercentage, profile.ProfileCompleted,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.AlumniProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM alumni_profiles WHERE user_id = $1`
	p, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// UpdateWithCompletion writes the editable fields and the derived completion
// pair in one transaction so the persisted derived values can never be stale
// relative to the fields they summarize.
func (r *profileRepo) UpdateWithCompletion(ctx context.Context, profile *domain.AlumniProfile, sync domain.CompletionSync) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE alumni_profiles SET
			name = $1, email = $2, phone = $3, location = $4, bio = $5,
			graduation_year = $6, degree = $7, major = $8,
			current_title = $9, current_company = $10,
			linkedin_url = $11, github_url = $12, website_url = $13,
			avatar_url = $14, skills = $15, interests = $16,
			updated_at = NOW()
		WHERE user_id = $17`
	cmdTag, err := tx.Exec(ctx, query,
		profile.Name, profile.Email, profile.Phone, profile.Location, profile.Bio,
		nullInt(profile.GraduationYear), profile.Degree, profile.Major,
		profile.CurrentTitle, profile.CurrentCompany,
		profile.LinkedinURL, profile.GithubURL, profile.WebsiteURL,
		profile.AvatarURL, pq.Array(profile.Skills), pq.Array(profile.Interests),
		profile.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	_, err = tx.Exec(ctx, `
		UPDATE alumni_profiles SET
			profile_completion_percentage = $1, profile_completed = $2
		WHERE user_id = $3`,
		sync.Percentage, sync.Completed, profile.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to persist completion state: %w", err)
	}

	return tx.Commit(ctx)
}

// UpdateCompletion re-persists only the derived pair, used by the backfill.
func (r *profileRepo) UpdateCompletion(ctx context.Context, userID string, sync domain.CompletionSync) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE alumni_profiles SET
			profile_completion_percentage = $1, profile_completed = $2, updated_at = NOW()
		WHERE user_id = $3`,
		sync.Percentage, sync.Completed, userID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepo) List(ctx context.Context, filter domain.ProfileFilter) ([]domain.ProfileSummary, int, error) {
	// Directory only lists profiles that pass the completion gate.
	where := `WHERE profile_completed = TRUE`
	args := []interface{}{}
	idx := 1

	if filter.GraduationYear != 0 {
		where += ` AND graduation_year = $` + strconv.Itoa(idx)
		args = append(args, filter.GraduationYear)
		idx++
	}
	if filter.Major != "" {
		where += ` AND major ILIKE $` + strconv.Itoa(idx)
		args = append(args, filter.Major)
		idx++
	}
	if filter.Search != "" {
		where += ` AND (name ILIKE $` + strconv.Itoa(idx) + ` OR current_company ILIKE $` + strconv.Itoa(idx) + `)`
		args = append(args, "%"+filter.Search+"%")
		idx++
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM alumni_profiles `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT user_id, name, COALESCE(graduation_year, 0), COALESCE(degree, ''), COALESCE(major, ''),
		       COALESCE(current_title, ''), COALESCE(current_company, ''), COALESCE(avatar_url, '')
		FROM alumni_profiles ` + where + `
		ORDER BY name ASC
		LIMIT $` + strconv.Itoa(idx) + ` OFFSET $` + strconv.Itoa(idx+1)
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	summaries := []domain.ProfileSummary{}
	for rows.Next() {
		var s domain.ProfileSummary
		if err := rows.Scan(
			&s.UserID, &s.Name, &s.GraduationYear, &s.Degree, &s.Major,
			&s.CurrentTitle, &s.CurrentCompany, &s.AvatarURL,
		); err != nil {
			return nil, 0, err
		}
		summaries = append(summaries, s)
	}
	return summaries, total, rows.Err()
}

// ListAll streams every profile for the completion backfill.
func (r *profileRepo) ListAll(ctx context.Context) ([]domain.AlumniProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM alumni_profiles ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.AlumniProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

// nullInt maps the zero value to NULL for nullable integer columns.
func nullInt(v int) interface{} {
	if v == 0 {
		return nil
	}
	return v
}
