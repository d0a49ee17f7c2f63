package usecase

import (
	"context"
	"time"

	"go-alumni-backend/internal/domain"
	"go-alumni-backend/pkg/apperror"

	"github.com/google/uuid"
)

type eventUsecase struct {
	eventRepo domain.EventRepository
}

func NewEventUsecase(eventRepo domain.EventRepository) domain.EventUsecase {
	return &eventUsecase{eventRepo: eventRepo}
}

func (u *eventUsecase) CreateEvent(ctx context.Context, userID string, event *domain.Event) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	event.ID = uuid.New()
	event.CreatedBy = userID
	return u.eventRepo.Create(ctx, event)
}

func validateEvent(event *domain.Event) error {
	if event.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if event.StartsAt.IsZero() || event.EndsAt.IsZero() {
		return apperror.BadRequest("Start and end times are required")
	}
	if !event.EndsAt.After(event.StartsAt) {
		return apperror.BadRequest("End time must be after start time")
	}
	if event.Capacity < 0 {
		return apperror.BadRequest("Capacity cannot be negative")
	}
	if event.Virtual && (event.MeetingLink == nil || *event.MeetingLink == "") {
		return apperror.BadRequest("Virtual events need a meeting link")
	}
	return nil
}

func (u *eventUsecase) GetEventDetails(ctx context.Context, id uuid.UUID, userID string) (*domain.Event, error) {
	event, err := u.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if userID != "" {
		rsvp, err := u.eventRepo.GetRSVP(ctx, id, userID)
		if err != nil {
			return nil, err
		}
		if rsvp != nil {
			event.MyRSVP = &rsvp.Status
		}
	}
	return event, nil
}

func (u *eventUsecase) ListUpcoming(ctx context.Context, page, pageSize int) ([]domain.Event, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	return u.eventRepo.FetchUpcoming(ctx, pageSize, (page-1)*pageSize)
}

func (u *eventUsecase) ListMyEvents(ctx context.Context, userID string, page, pageSize int) ([]domain.Event, int64, error) {
	page, pageSize = normalizePage(page, pageSize)
	return u.eventRepo.FetchByAttendee(ctx, userID, pageSize, (page-1)*pageSize)
}

func (u *eventUsecase) UpdateEvent(ctx context.Context, userID string, event *domain.Event) error {
	existing, err := u.eventRepo.GetByID(ctx, event.ID)
	if err != nil {
		return err
	}
	if existing.CreatedBy != userID && !isAdmin(ctx) {
		return apperror.Forbidden("You can only edit events you created")
	}
	if err := validateEvent(event); err != nil {
		return err
	}
	// Capacity cannot be lowered below the current going count
	if event.Capacity > 0 && event.Capacity < existing.GoingCount {
		return apperror.BadRequest("Capacity cannot be lower than current attendance")
	}
	event.CreatedBy = existing.CreatedBy
	return u.eventRepo.Update(ctx, event)
}

func (u *eventUsecase) DeleteEvent(ctx context.Context, userID string, id uuid.UUID) error {
	existing, err := u.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.CreatedBy != userID && !isAdmin(ctx) {
		return apperror.Forbidden("You can only delete events you created")
	}
	return u.eventRepo.Delete(ctx, id)
}

// SetRSVP upserts the caller's RSVP. Capacity is enforced in the repository
// transaction; RSVPs close once the event has ended.
func (u *eventUsecase) SetRSVP(ctx context.Context, userID string, eventID uuid.UUID, status domain.RSVPStatus) error {
	if !status.IsValid() {
		return apperror.BadRequest("RSVP status must be going, maybe or declined")
	}

	event, err := u.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if time.Now().After(event.EndsAt) {
		return apperror.BadRequest("This event has already ended")
	}

	rsvp := &domain.RSVP{EventID: eventID, UserID: userID, Status: status}
	return u.eventRepo.UpsertRSVP(ctx, rsvp, event.Capacity)
}
