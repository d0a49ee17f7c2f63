package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Conversation pairs two connected users. Delivery/realtime is out of scope
// here; this service tracks conversations, messages and unread counts.
type Conversation struct {
	ID            uuid.UUID `json:"id"`
	UserA         string    `json:"user_a"`
	UserB         string    `json:"user_b"`
	LastMessageAt time.Time `json:"last_message_at"`
	CreatedAt     time.Time `json:"created_at"`

	Peer        *ProfileSummary `json:"peer,omitempty"`
	UnreadCount int             `json:"unread_count"`
	LastMessage string          `json:"last_message,omitempty"`
}

type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Body           string    `json:"body"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

type MessageRepository interface {
	FindConversation(ctx context.Context, userA, userB string) (*Conversation, error)
	CreateConversation(ctx context.Context, conv *Conversation) error
	GetConversation(ctx context.Context, id uuid.UUID) (*Conversation, error)
	ListConversations(ctx context.Context, userID string) ([]Conversation, error)
	InsertMessage(ctx context.Context, msg *Message) error
	ListMessages(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]Message, error)
	MarkRead(ctx context.Context, conversationID uuid.UUID, readerID string) error
	UnreadCount(ctx context.Context, userID string) (int, error)
}

type MessageUsecase interface {
	// StartConversation requires an accepted connection between the parties.
	StartConversation(ctx context.Context, senderID, recipientID, body string) (*Conversation, error)
	SendMessage(ctx context.Context, senderID string, conversationID uuid.UUID, body string) (*Message, error)
	ListConversations(ctx context.Context, userID string) ([]Conversation, error)
	ListMessages(ctx context.Context, userID string, conversationID uuid.UUID, page, pageSize int) ([]Message, error)
	MarkConversationRead(ctx context.Context, userID string, conversationID uuid.UUID) error
	UnreadCount(ctx context.Context, userID string) (int, error)
}
