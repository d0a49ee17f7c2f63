package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-alumni-backend/internal/completion"
	"go-alumni-backend/internal/domain"
	"go-alumni-backend/pkg/apperror"
	"go-alumni-backend/pkg/logger"
	"go-alumni-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo, validate: validate}
}

func (u *profileUsecase) GetMyProfile(ctx context.Context, userID string) (*domain.AlumniProfile, error) {
	if domain.UserIDFromContext(ctx) != userID {
		return nil, apperror.Forbidden("You can only view your own profile")
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}

	// The gate is always recomputed from current fields; the persisted
	// boolean is a read-model copy, never an input.
	profile.CompletionPercentage = completion.Percentage(profile)
	profile.ProfileCompleted = completion.IsComplete(profile)
	return profile, nil
}

// GetPublicProfile returns another member's profile. Only profiles passing
// the completion gate are visible to other members.
func (u *profileUsecase) GetPublicProfile(ctx context.Context, userID string) (*domain.AlumniProfile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Profile not found")
	}

	if domain.UserIDFromContext(ctx) != userID && !completion.IsComplete(profile) {
		return nil, apperror.NotFound("Profile not found")
	}

	profile.CompletionPercentage = completion.Percentage(profile)
	profile.ProfileCompleted = completion.IsComplete(profile)
	// Contact details stay private between members
	profile.Phone = ""
	return profile, nil
}

// UpdateProfile writes the caller's profile and its freshly recomputed
// completion state in one transaction.
func (u *profileUsecase) UpdateProfile(ctx context.Context, profile *domain.AlumniProfile) (*domain.AlumniProfile, domain.CompletionSync, error) {
	var zero domain.CompletionSync

	if domain.UserIDFromContext(ctx) != profile.UserID {
		return nil, zero, apperror.Forbidden("You can only update your own profile")
	}

	if err := u.validate.Struct(profile); err != nil {
		msgs := validation.FormatValidationErrors(err)
		return nil, zero, apperror.BadRequest(strings.Join(msgs, "; "))
	}
	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	if profile.Interests == nil {
		profile.Interests = []string{}
	}

	sync := domain.CompletionSync{
		Percentage: completion.Percentage(profile),
		Completed:  completion.IsComplete(profile),
	}

	if err := u.profileRepo.UpdateWithCompletion(ctx, profile, sync); err != nil {
		return nil, zero, err
	}

	updated, err := u.profileRepo.GetByUserID(ctx, profile.UserID)
	if err != nil {
		return nil, zero, err
	}
	if updated == nil {
		return nil, zero, apperror.NotFound("Profile not found")
	}
	return updated, sync, nil
}

func (u *profileUsecase) ListDirectory(ctx context.Context, filter domain.ProfileFilter) ([]domain.ProfileSummary, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	return u.profileRepo.List(ctx, filter)
}

// MigrateAllCompletion recomputes and re-persists the derived completion pair
// for every profile. Rows already in sync are skipped, so a second run
// reports zero updates.
func (u *profileUsecase) MigrateAllCompletion(ctx context.Context) (*domain.MigrationReport, error) {
	profiles, err := u.profileRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.MigrationReport{Total: len(profiles), Errors: []string{}}
	for i := range profiles {
		p := &profiles[i]

		sync := domain.CompletionSync{
			Percentage: completion.Percentage(p),
			Completed:  completion.IsComplete(p),
		}
		if sync.Completed {
			report.Completed++
		} else {
			report.Incomplete++
		}

		if p.CompletionPercentage == sync.Percentage && p.ProfileCompleted == sync.Completed {
			continue
		}

		if err := u.profileRepo.UpdateCompletion(ctx, p.UserID, sync); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("user %s: %v", p.UserID, err))
			continue
		}
		report.Updated++
	}

	logger.Log.Info("completion backfill finished",
		"total", report.Total,
		"updated", report.Updated,
		"completed", report.Completed,
		"errors", len(report.Errors),
	)
	return report, nil
}
