package domain

import (
	"context"
	"time"
)

type BookmarkType string

const (
	BookmarkJob   BookmarkType = "job"
	BookmarkEvent BookmarkType = "event"
)

func (t BookmarkType) IsValid() bool {
	return t == BookmarkJob || t == BookmarkEvent
}

type Bookmark struct {
	ID        int64        `json:"id"`
	UserID    string       `json:"user_id"`
	Type      BookmarkType `json:"type"`
	EntityID  string       `json:"entity_id"`
	CreatedAt time.Time    `json:"created_at"`

	// Hydrated summaries for list responses, one of the two set
	Job   *JobWithPoster `json:"job,omitempty"`
	Event *Event         `json:"event,omitempty"`
}

type BookmarkRepository interface {
	Insert(ctx context.Context, b *Bookmark) error
	Delete(ctx context.Context, userID string, t BookmarkType, entityID string) (bool, error)
	Exists(ctx context.Context, userID string, t BookmarkType, entityID string) (bool, error)
	ListByUser(ctx context.Context, userID string, t BookmarkType) ([]Bookmark, error)
}

type BookmarkUsecase interface {
	// Toggle adds the bookmark if absent, removes it if present. Returns
	// true when the bookmark exists after the call.
	Toggle(ctx context.Context, userID string, t BookmarkType, entityID string) (bool, error)
	List(ctx context.Context, userID string, t BookmarkType) ([]Bookmark, error)
}
