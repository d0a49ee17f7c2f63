package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type RSVPStatus string

const (
	RSVPGoing    RSVPStatus = "going"
	RSVPMaybe    RSVPStatus = "maybe"
	RSVPDeclined RSVPStatus = "declined"
)

func (s RSVPStatus) IsValid() bool {
	switch s {
	case RSVPGoing, RSVPMaybe, RSVPDeclined:
		return true
	}
	return false
}

type Event struct {
	ID          uuid.UUID `json:"id"`
	CreatedBy   string    `json:"created_by"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location,omitempty"`
	Virtual     bool      `json:"virtual"`
	MeetingLink *string   `json:"meeting_link,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	// Capacity 0 means unlimited
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	GoingCount int         `json:"going_count"`
	MaybeCount int         `json:"maybe_count"`
	MyRSVP     *RSVPStatus `json:"my_rsvp,omitempty"`
}

type RSVP struct {
	EventID   uuid.UUID  `json:"event_id"`
	UserID    string     `json:"user_id"`
	Status    RSVPStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)
	FetchUpcoming(ctx context.Context, limit, offset int) ([]Event, int64, error)
	FetchByAttendee(ctx context.Context, userID string, limit, offset int) ([]Event, int64, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	// UpsertRSVP writes the caller's RSVP; capacity is enforced inside the
	// same transaction as the count check.
	UpsertRSVP(ctx context.Context, rsvp *RSVP, capacity int) error
	GetRSVP(ctx context.Context, eventID uuid.UUID, userID string) (*RSVP, error)
	CountUpcoming(ctx context.Context) (int, error)
}

type EventUsecase interface {
	CreateEvent(ctx context.Context, userID string, event *Event) error
	GetEventDetails(ctx context.Context, id uuid.UUID, userID string) (*Event, error)
	ListUpcoming(ctx context.Context, page, pageSize int) ([]Event, int64, error)
	ListMyEvents(ctx context.Context, userID string, page, pageSize int) ([]Event, int64, error)
	UpdateEvent(ctx context.Context, userID string, event *Event) error
	DeleteEvent(ctx context.Context, userID string, id uuid.UUID) error
	SetRSVP(ctx context.Context, userID string, eventID uuid.UUID, status RSVPStatus) error
}
