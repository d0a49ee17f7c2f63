package usecase

import (
	"context"
	"fmt"
	"math"

	"go-alumni-backend/internal/domain"
	"go-alumni-backend/pkg/apperror"
)

type adminUsecase struct {
	adminRepo domain.AdminRepository
	profileUC domain.ProfileUsecase
}

func NewAdminUsecase(adminRepo domain.AdminRepository, profileUC domain.ProfileUsecase) domain.AdminUsecase {
	return &adminUsecase{adminRepo: adminRepo, profileUC: profileUC}
}

func (u *adminUsecase) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	stats, err := u.adminRepo.GetStats(ctx)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to fetch statistics: %w", err))
	}
	return stats, nil
}

func (u *adminUsecase) ListUsers(ctx context.Context, role string, page, pageSize int) (*domain.PaginatedResult[domain.AdminUser], error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}
	if role != "" && role != "alumni" && role != "admin" {
		return nil, apperror.BadRequest("Role filter must be 'alumni' or 'admin'")
	}

	page, pageSize = normalizePage(page, pageSize)

	users, total, err := u.adminRepo.ListUsers(ctx, role, page, pageSize)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to fetch users: %w", err))
	}

	return &domain.PaginatedResult[domain.AdminUser]{
		Data:       users,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}

func (u *adminUsecase) DisableUser(ctx context.Context, userID string, disable bool) (*domain.AdminUser, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, apperror.BadRequest("User ID is required")
	}

	// Admins cannot lock themselves out
	if disable && domain.UserIDFromContext(ctx) == userID {
		return nil, apperror.BadRequest("You cannot disable your own account")
	}

	if err := u.adminRepo.DisableUser(ctx, userID, disable); err != nil {
		return nil, err
	}
	return &domain.AdminUser{ID: userID, IsDisabled: disable}, nil
}

func (u *adminUsecase) DeleteUser(ctx context.Context, userID string) error {
	if err := u.requireAdmin(ctx); err != nil {
		return err
	}

	if domain.UserIDFromContext(ctx) == userID {
		return apperror.BadRequest("You cannot delete your own account")
	}

	return u.adminRepo.DeleteUser(ctx, userID)
}

// RunCompletionBackfill recomputes persisted completion state for every
// profile. Admin-only; safe to re-run.
func (u *adminUsecase) RunCompletionBackfill(ctx context.Context) (*domain.MigrationReport, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}
	return u.profileUC.MigrateAllCompletion(ctx)
}

// requireAdmin checks the role set by the auth middleware.
func (u *adminUsecase) requireAdmin(ctx context.Context) error {
	if domain.RoleFromContext(ctx) != "admin" {
		return apperror.Forbidden("Admin access required")
	}
	return nil
}
