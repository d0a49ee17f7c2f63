package postgres

import (
	"context"
	"errors"
	"go-alumni-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (posted_by, title, company, description, location, salary_min, salary_max,
		                  job_type, experience_level, apply_url, deadline, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		job.PostedBy, job.Title, job.Company, job.Description, job.Location,
		job.SalaryMin, job.SalaryMax, job.JobType, job.ExperienceLevel,
		job.ApplyURL, job.Deadline, job.Active,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
}

const jobColumns = `j.id, j.posted_by, j.title, j.company, j.description, j.location,
	COALESCE(j.salary_min, 0), COALESCE(j.salary_max, 0),
	j.job_type, j.experience_level, j.apply_url, j.deadline, j.active,
	j.created_at, j.updated_at`

func scanJob(row pgx.Row, job *domain.Job) error {
	return row.Scan(
		&job.ID, &job.PostedBy, &job.Title, &job.Company, &job.Description, &job.Location,
		&job.SalaryMin, &job.SalaryMax,
		&job.JobType, &job.ExperienceLevel, &job.ApplyURL, &job.Deadline, &job.Active,
		&job.CreatedAt, &job.UpdatedAt,
	)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.id = $1`
	var job domain.Job
	if err := scanJob(r.db.QueryRow(ctx, query, id), &job); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

const jobWithPosterQuery = `
	SELECT ` + jobColumns + `,
	       COALESCE(p.name, 'Unknown'), COALESCE(p.avatar_url, '')
	FROM jobs j
	LEFT JOIN alumni_profiles p ON j.posted_by = p.user_id`

func scanJobWithPoster(row pgx.Row) (*domain.JobWithPoster, error) {
	var j domain.JobWithPoster
	err := row.Scan(
		&j.ID, &j.PostedBy, &j.Title, &j.Company, &j.Description, &j.Location,
		&j.SalaryMin, &j.SalaryMax,
		&j.JobType, &j.ExperienceLevel, &j.ApplyURL, &j.Deadline, &j.Active,
		&j.CreatedAt, &j.UpdatedAt,
		&j.PosterName, &j.PosterAvatarURL,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// GetActiveByID returns an active job with the poster summary, for public pages.
func (r *jobRepo) GetActiveByID(ctx context.Context, id int64) (*domain.JobWithPoster, error) {
	query := jobWithPosterQuery + ` WHERE j.id = $1 AND j.active = TRUE`
	j, err := scanJobWithPoster(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return j, nil
}

func (r *jobRepo) fetchWithPoster(ctx context.Context, where string, countWhere string, limit, offset int) ([]domain.JobWithPoster, int64, error) {
	query := jobWithPosterQuery + ` ` + where + ` ORDER BY j.created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := []domain.JobWithPoster{}
	for rows.Next() {
		j, err := scanJobWithPoster(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs j `+countWhere).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.JobWithPoster, int64, error) {
	return r.fetchWithPoster(ctx, "", "", limit, offset)
}

// FetchActive returns only active jobs; the public endpoint relies on this
// being enforced server-side.
func (r *jobRepo) FetchActive(ctx context.Context, limit, offset int) ([]domain.JobWithPoster, int64, error) {
	return r.fetchWithPoster(ctx, `WHERE j.active = TRUE`, `WHERE j.active = TRUE`, limit, offset)
}

func (r *jobRepo) FetchByPoster(ctx context.Context, userID string, limit, offset int) ([]domain.Job, int64, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.posted_by = $1 ORDER BY j.created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		var j domain.Job
		if err := scanJob(rows, &j); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE posted_by = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `
		UPDATE jobs SET
			title = $2, company = $3, description = $4, location = $5,
			salary_min = $6, salary_max = $7, job_type = $8, experience_level = $9,
			apply_url = $10, deadline = $11, active = $12, updated_at = NOW()
		WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Company, job.Description, job.Location,
		job.SalaryMin, job.SalaryMax, job.JobType, job.ExperienceLevel,
		job.ApplyURL, job.Deadline, job.Active,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
