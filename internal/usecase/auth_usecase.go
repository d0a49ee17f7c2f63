package usecase

import (
	"context"
	"errors"
	"time"

	"go-alumni-backend/internal/completion"
	"go-alumni-backend/internal/domain"
	"go-alumni-backend/pkg/apperror"
	"go-alumni-backend/pkg/logger"
)

type authUsecase struct {
	userRepo    domain.UserRepository
	profileRepo domain.ProfileRepository
}

func NewAuthUsecase(userRepo domain.UserRepository, profileRepo domain.ProfileRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, profileRepo: profileRepo}
}

// EnsureUserExists syncs the Supabase identity into the local users table and
// seeds an empty alumni profile on first login. Idempotent: called after every
// successful token verification.
func (u *authUsecase) EnsureUserExists(ctx context.Context, user *domain.User) error {
	existing, err := u.userRepo.GetByID(ctx, user.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if existing != nil {
		if user.Role != "" && existing.Role != user.Role {
			existing.Role = user.Role
			existing.UpdatedAt = time.Now()
			if err := u.userRepo.Update(ctx, existing); err != nil {
				return err
			}
		}
		return u.ensureProfile(ctx, existing.ID, existing.Email)
	}

	if user.Role == "" {
		user.Role = "alumni"
	}
	user.Active = true
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if err := u.userRepo.Create(ctx, user); err != nil {
		return err
	}
	return u.ensureProfile(ctx, user.ID, user.Email)
}

// ensureProfile creates the empty profile row with its derived completion
// state so the score exists from the very first request.
func (u *authUsecase) ensureProfile(ctx context.Context, userID, email string) error {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if profile != nil {
		return nil
	}

	seed := &domain.AlumniProfile{
		UserID:    userID,
		Email:     email,
		Skills:    []string{},
		Interests: []string{},
	}
	seed.CompletionPercentage = completion.Percentage(seed)
	seed.ProfileCompleted = completion.IsComplete(seed)

	if err := u.profileRepo.Create(ctx, seed); err != nil {
		return err
	}
	logger.Log.Info("seeded empty profile", "user_id", userID)
	return nil
}

func (u *authUsecase) AssignRole(ctx context.Context, userID string, role string) error {
	if domain.RoleFromContext(ctx) != "admin" {
		return apperror.Forbidden("Only admins can assign roles")
	}
	if role != "alumni" && role != "admin" {
		return apperror.BadRequest("Role must be 'alumni' or 'admin'")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}

	user.Role = role
	user.UpdatedAt = time.Now()
	return u.userRepo.Update(ctx, user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

func (u *authUsecase) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return user != nil, nil
}
