package domain

import "context"

// AdminStats contains dashboard statistics
type AdminStats struct {
	TotalUsers         int64        `json:"totalUsers"`
	UsersByRole        UsersByRole  `json:"usersByRole"`
	CompletedProfiles  int64        `json:"completedProfiles"`
	AvgCompletion      float64      `json:"avgCompletion"`
	TotalJobs          int64        `json:"totalJobs"`
	ActiveJobs         int64        `json:"activeJobs"`
	UpcomingEvents     int64        `json:"upcomingEvents"`
	PendingConnections int64        `json:"pendingConnections"`
	SystemHealth       SystemHealth `json:"systemHealth"`
}

type UsersByRole struct {
	Admin  int64 `json:"admin"`
	Alumni int64 `json:"alumni"`
}

type SystemHealth struct {
	Status      string `json:"status"`      // "healthy", "degraded", "down"
	LastChecked string `json:"lastChecked"` // ISO8601 timestamp
}

// AdminUser represents a user for admin management, with the persisted
// completion columns surfaced for the portal's user table.
type AdminUser struct {
	ID                   string `json:"id"`
	Email                string `json:"email"`
	Name                 string `json:"name"`
	Role                 string `json:"role"`
	IsDisabled           bool   `json:"isDisabled"`
	CompletionPercentage int    `json:"completionPercentage"`
	ProfileCompleted     bool   `json:"profileCompleted"`
	CreatedAt            string `json:"createdAt"`
	UpdatedAt            string `json:"updatedAt"`
}

// PaginatedResult for list responses
type PaginatedResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// AdminRepository defines admin-specific data access
type AdminRepository interface {
	GetStats(ctx context.Context) (*AdminStats, error)

	ListUsers(ctx context.Context, role string, page, pageSize int) ([]AdminUser, int64, error)
	DisableUser(ctx context.Context, userID string, disable bool) error
	DeleteUser(ctx context.Context, userID string) error
}

// AdminUsecase defines admin business logic
type AdminUsecase interface {
	GetStats(ctx context.Context) (*AdminStats, error)

	ListUsers(ctx context.Context, role string, page, pageSize int) (*PaginatedResult[AdminUser], error)
	DisableUser(ctx context.Context, userID string, disable bool) (*AdminUser, error)
	DeleteUser(ctx context.Context, userID string) error

	// RunCompletionBackfill recomputes persisted completion state for all
	// profiles via the profile usecase.
	RunCompletionBackfill(ctx context.Context) (*MigrationReport, error)
}
