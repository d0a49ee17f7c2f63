package usecase

import (
	"context"
	"time"

	"go-alumni-backend/internal/domain"
	"go-alumni-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.Job) error {
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.Company == "" {
		return apperror.BadRequest("Company is required")
	}
	if job.SalaryMin > 0 && job.SalaryMax > 0 && job.SalaryMin > job.SalaryMax {
		return apperror.BadRequest("Minimum salary cannot be greater than maximum salary")
	}
	if job.Deadline != nil && job.Deadline.Before(time.Now()) {
		return apperror.BadRequest("Deadline cannot be in the past")
	}

	job.PostedBy = userID
	job.Active = true
	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.Job, error) {
	return u.jobRepo.GetByID(ctx, id)
}

// GetPublicJobDetails returns an active job with the poster's summary.
func (u *jobUsecase) GetPublicJobDetails(ctx context.Context, id int64) (*domain.JobWithPoster, error) {
	return u.jobRepo.GetActiveByID(ctx, id)
}

func (u *jobUsecase) ListJobs(ctx context.Context, page, pageSize int) ([]domain.JobWithPoster, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	return u.jobRepo.Fetch(ctx, pageSize, (page-1)*pageSize)
}

// ListPublicActiveJobs filters to active jobs server-side; the client cannot
// widen the listing.
func (u *jobUsecase) ListPublicActiveJobs(ctx context.Context, page, pageSize int) ([]domain.JobWithPoster, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	return u.jobRepo.FetchActive(ctx, pageSize, (page-1)*pageSize)
}

func (u *jobUsecase) ListMyJobs(ctx context.Context, userID string, page, pageSize int) ([]domain.Job, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	return u.jobRepo.FetchByPoster(ctx, userID, pageSize, (page-1)*pageSize)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, userID string, job *domain.Job) error {
	existing, err := u.jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		return err
	}
	if existing.PostedBy != userID && !isAdmin(ctx) {
		return apperror.Forbidden("You can only edit jobs you posted")
	}

	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.SalaryMin > 0 && job.SalaryMax > 0 && job.SalaryMin > job.SalaryMax {
		return apperror.BadRequest("Minimum salary cannot be greater than maximum salary")
	}

	job.PostedBy = existing.PostedBy
	job.UpdatedAt = time.Now()
	return u.jobRepo.Update(ctx, job)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, userID string, id int64) error {
	existing, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.PostedBy != userID && !isAdmin(ctx) {
		return apperror.Forbidden("You can only delete jobs you posted")
	}
	return u.jobRepo.Delete(ctx, id)
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}

func isAdmin(ctx context.Context) bool {
	return domain.RoleFromContext(ctx) == "admin"
}
