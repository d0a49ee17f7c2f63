package domain

import (
	"context"
	"time"
)

// AlumniProfile is the profile record behind the directory, the completion
// score and the connection gate. Skills and interests map to text[] columns.
type AlumniProfile struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	// Basic
	Name     string `json:"name" validate:"omitempty,valid_name,max=100"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,valid_phone"`
	Location string `json:"location,omitempty" validate:"omitempty,max=150"`
	Bio      string `json:"bio,omitempty" validate:"omitempty,no_emoji,max=2000"`

	// Education
	GraduationYear int    `json:"graduation_year,omitempty" validate:"omitempty,grad_year"`
	Degree         string `json:"degree,omitempty" validate:"omitempty,max=100"`
	Major          string `json:"major,omitempty" validate:"omitempty,max=100"`

	// Professional
	CurrentTitle   string `json:"current_title,omitempty" validate:"omitempty,max=100"`
	CurrentCompany string `json:"current_company,omitempty" validate:"omitempty,max=100"`

	// Social
	LinkedinURL string `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	GithubURL   string `json:"github_url,omitempty" validate:"omitempty,url"`
	WebsiteURL  string `json:"website_url,omitempty" validate:"omitempty,url"`

	// Additional
	AvatarURL string   `json:"avatar_url,omitempty"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`

	// Derived, persisted alongside every profile write
	CompletionPercentage int  `json:"profile_completion_percentage"`
	ProfileCompleted     bool `json:"profile_completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileSummary is the trimmed shape used in directory listings and as the
// counterpart view on connections/conversations.
type ProfileSummary struct {
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	GraduationYear int    `json:"graduation_year,omitempty"`
	Degree         string `json:"degree,omitempty"`
	Major          string `json:"major,omitempty"`
	CurrentTitle   string `json:"current_title,omitempty"`
	CurrentCompany string `json:"current_company,omitempty"`
	AvatarURL      string `json:"avatar_url,omitempty"`
}

type ProfileFilter struct {
	GraduationYear int
	Major          string
	Search         string
	Page           int
	PageSize       int
}

// CompletionSync is the freshly recomputed derived pair returned by every
// profile write.
type CompletionSync struct {
	Percentage int  `json:"percentage"`
	Completed  bool `json:"completed"`
}

// MigrationReport summarizes a completion backfill run.
type MigrationReport struct {
	Total      int      `json:"total"`
	Completed  int      `json:"completed"`
	Incomplete int      `json:"incomplete"`
	Updated    int      `json:"updated"`
	Errors     []string `json:"errors"`
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *AlumniProfile) error
	GetByUserID(ctx context.Context, userID string) (*AlumniProfile, error)
	// UpdateWithCompletion writes the profile fields and the derived
	// completion pair in a single transaction.
	UpdateWithCompletion(ctx context.Context, profile *AlumniProfile, sync CompletionSync) error
	UpdateCompletion(ctx context.Context, userID string, sync CompletionSync) error
	List(ctx context.Context, filter ProfileFilter) ([]ProfileSummary, int, error)
	ListAll(ctx context.Context) ([]AlumniProfile, error)
}

type ProfileUsecase interface {
	GetMyProfile(ctx context.Context, userID string) (*AlumniProfile, error)
	GetPublicProfile(ctx context.Context, userID string) (*AlumniProfile, error)
	UpdateProfile(ctx context.Context, profile *AlumniProfile) (*AlumniProfile, CompletionSync, error)
	ListDirectory(ctx context.Context, filter ProfileFilter) ([]ProfileSummary, int, error)
	// MigrateAllCompletion recomputes and re-persists the derived pair for
	// every profile. Idempotent; safe to re-run.
	MigrateAllCompletion(ctx context.Context) (*MigrationReport, error)
}
