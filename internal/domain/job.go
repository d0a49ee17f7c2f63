package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type Job struct {
	ID              int64     `json:"id"`
	PostedBy        string    `json:"posted_by"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	SalaryMin       float64   `json:"salary_min,omitempty"`
	SalaryMax       float64   `json:"salary_max,omitempty"`
	JobType         *string   `json:"job_type"`
	ExperienceLevel *string   `json:"experience_level"`
	ApplyURL        *string   `json:"apply_url"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// JobWithPoster extends Job with the posting alum's summary for listings.
type JobWithPoster struct {
	Job
	PosterName      string `json:"poster_name"`
	PosterAvatarURL string `json:"poster_avatar_url,omitempty"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetActiveByID(ctx context.Context, id int64) (*JobWithPoster, error)
	Fetch(ctx context.Context, limit, offset int) ([]JobWithPoster, int64, error)
	FetchActive(ctx context.Context, limit, offset int) ([]JobWithPoster, int64, error)
	FetchByPoster(ctx context.Context, userID string, limit, offset int) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID string, job *Job) error
	GetJobDetails(ctx context.Context, id int64) (*Job, error)
	GetPublicJobDetails(ctx context.Context, id int64) (*JobWithPoster, error)
	ListJobs(ctx context.Context, page, pageSize int) ([]JobWithPoster, int64, error)
	ListPublicActiveJobs(ctx context.Context, page, pageSize int) ([]JobWithPoster, int64, error)
	ListMyJobs(ctx context.Context, userID string, page, pageSize int) ([]Job, int64, error)
	UpdateJob(ctx context.Context, userID string, job *Job) error
	DeleteJob(ctx context.Context, userID string, id int64) error
}
