package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "pending"
	ConnectionAccepted ConnectionStatus = "accepted"
	ConnectionRejected ConnectionStatus = "rejected"
)

func (s ConnectionStatus) IsValid() bool {
	switch s {
	case ConnectionPending, ConnectionAccepted, ConnectionRejected:
		return true
	}
	return false
}

// Connection is a directed request between two profiles. Both parties must
// pass the completion gate before a row is created.
type Connection struct {
	ID          uuid.UUID        `json:"id"`
	RequesterID string           `json:"requester_id"`
	RecipientID string           `json:"recipient_id"`
	Status      ConnectionStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	// Counterpart summary for list responses
	Peer *ProfileSummary `json:"peer,omitempty"`
}

// GateResult is the structured outcome of a connection-gate check. A false
// CanConnect is a normal negative result, not an error condition.
type GateResult struct {
	CanConnect    bool     `json:"can_connect"`
	Reason        string   `json:"reason,omitempty"`
	Party         string   `json:"party,omitempty"` // requester | recipient
	MissingFields []string `json:"missing_fields,omitempty"`
}

type ConnectionRepository interface {
	Create(ctx context.Context, conn *Connection) error
	GetByID(ctx context.Context, id uuid.UUID) (*Connection, error)
	// FindBetween returns any connection between the two users regardless
	// of direction, or nil.
	FindBetween(ctx context.Context, userA, userB string) (*Connection, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status ConnectionStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID string, status ConnectionStatus) ([]Connection, error)
	ListIncomingPending(ctx context.Context, userID string) ([]Connection, error)
	CountPending(ctx context.Context) (int, error)
}

type ConnectionUsecase interface {
	SendRequest(ctx context.Context, requesterID, recipientID string) (*Connection, error)
	Respond(ctx context.Context, userID string, connectionID uuid.UUID, accept bool) (*Connection, error)
	Remove(ctx context.Context, userID string, connectionID uuid.UUID) error
	ListConnections(ctx context.Context, userID string, status ConnectionStatus) ([]Connection, error)
	ListIncomingRequests(ctx context.Context, userID string) ([]Connection, error)
	// CheckGate reports whether the given user may participate in
	// networking, with missing required fields for the UI.
	CheckGate(ctx context.Context, userID string) (*GateResult, error)
}
