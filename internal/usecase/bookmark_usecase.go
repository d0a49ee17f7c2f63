package usecase

import (
	"context"
	"strconv"

	"go-alumni-backend/internal/domain"
	"go-alumni-backend/pkg/apperror"

	"github.com/google/uuid"
)

type bookmarkUsecase struct {
	bookmarkRepo domain.BookmarkRepository
	jobRepo      domain.JobRepository
	eventRepo    domain.EventRepository
}

func NewBookmarkUsecase(bookmarkRepo domain.BookmarkRepository, jobRepo domain.JobRepository, eventRepo domain.EventRepository) domain.BookmarkUsecase {
	return &bookmarkUsecase{bookmarkRepo: bookmarkRepo, jobRepo: jobRepo, eventRepo: eventRepo}
}

// Toggle flips the bookmark and reports whether it exists afterwards. The
// target is checked so dangling bookmarks cannot be created.
func (u *bookmarkUsecase) Toggle(ctx context.Context, userID string, t domain.BookmarkType, entityID string) (bool, error) {
	if !t.IsValid() {
		return false, apperror.BadRequest("Bookmark type must be job or event")
	}

	exists, err := u.bookmarkRepo.Exists(ctx, userID, t, entityID)
	if err != nil {
		return false, err
	}
	if exists {
		removed, err := u.bookmarkRepo.Delete(ctx, userID, t, entityID)
		if err != nil {
			return false, err
		}
		return !removed, nil
	}

	if err := u.checkTarget(ctx, t, entityID); err != nil {
		return false, err
	}
	b := &domain.Bookmark{UserID: userID, Type: t, EntityID: entityID}
	if err := u.bookmarkRepo.Insert(ctx, b); err != nil {
		return false, err
	}
	return true, nil
}

func (u *bookmarkUsecase) checkTarget(ctx context.Context, t domain.BookmarkType, entityID string) error {
	switch t {
	case domain.BookmarkJob:
		id, err := strconv.ParseInt(entityID, 10, 64)
		if err != nil {
			return apperror.BadRequest("Invalid job ID")
		}
		if _, err := u.jobRepo.GetByID(ctx, id); err != nil {
			return apperror.NotFound("Job not found")
		}
	case domain.BookmarkEvent:
		id, err := uuid.Parse(entityID)
		if err != nil {
			return apperror.BadRequest("Invalid event ID")
		}
		if _, err := u.eventRepo.GetByID(ctx, id); err != nil {
			return apperror.NotFound("Event not found")
		}
	}
	return nil
}

// List returns the caller's bookmarks with the bookmarked job or event
// hydrated. Targets deleted since bookmarking are skipped.
func (u *bookmarkUsecase) List(ctx context.Context, userID string, t domain.BookmarkType) ([]domain.Bookmark, error) {
	if !t.IsValid() {
		return nil, apperror.BadRequest("Bookmark type must be job or event")
	}

	bookmarks, err := u.bookmarkRepo.ListByUser(ctx, userID, t)
	if err != nil {
		return nil, err
	}

	out := bookmarks[:0]
	for _, b := range bookmarks {
		switch t {
		case domain.BookmarkJob:
			id, err := strconv.ParseInt(b.EntityID, 10, 64)
			if err != nil {
				continue
			}
			job, err := u.jobRepo.GetActiveByID(ctx, id)
			if err != nil {
				continue
			}
			b.Job = job
		case domain.BookmarkEvent:
			id, err := uuid.Parse(b.EntityID)
			if err != nil {
				continue
			}
			event, err := u.eventRepo.GetByID(ctx, id)
			if err != nil {
				continue
			}
			b.Event = event
		}
		out = append(out, b)
	}
	return out, nil
}
