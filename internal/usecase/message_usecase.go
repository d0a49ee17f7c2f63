package usecase

import (
	"context"
	"strings"

	"go-alumni-backend/internal/domain"
	"go-alumni-backend/pkg/apperror"

	"github.com/google/uuid"
)

const maxMessageLength = 4000

type messageUsecase struct {
	msgRepo  domain.MessageRepository
	connRepo domain.ConnectionRepository
}

func NewMessageUsecase(msgRepo domain.MessageRepository, connRepo domain.ConnectionRepository) domain.MessageUsecase {
	return &messageUsecase{msgRepo: msgRepo, connRepo: connRepo}
}

func validBody(body string) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", apperror.BadRequest("Message body is required")
	}
	if len(body) > maxMessageLength {
		return "", apperror.BadRequest("Message is too long")
	}
	return body, nil
}

// StartConversation opens (or reuses) the conversation between two connected
// members and sends the first message. An accepted connection is required.
func (u *messageUsecase) StartConversation(ctx context.Context, senderID, recipientID, body string) (*domain.Conversation, error) {
	if senderID == recipientID {
		return nil, apperror.BadRequest("You cannot message yourself")
	}
	body, err := validBody(body)
	if err != nil {
		return nil, err
	}

	conn, err := u.connRepo.FindBetween(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if conn == nil || conn.Status != domain.ConnectionAccepted {
		return nil, apperror.Forbidden("You can only message accepted connections")
	}

	conv, err := u.msgRepo.FindConversation(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		conv = &domain.Conversation{ID: uuid.New(), UserA: senderID, UserB: recipientID}
		if err := u.msgRepo.CreateConversation(ctx, conv); err != nil {
			return nil, err
		}
	}

	msg := &domain.Message{ID: uuid.New(), ConversationID: conv.ID, SenderID: senderID, Body: body}
	if err := u.msgRepo.InsertMessage(ctx, msg); err != nil {
		return nil, err
	}
	return conv, nil
}

func (u *messageUsecase) SendMessage(ctx context.Context, senderID string, conversationID uuid.UUID, body string) (*domain.Message, error) {
	body, err := validBody(body)
	if err != nil {
		return nil, err
	}

	conv, err := u.msgRepo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, apperror.NotFound("Conversation not found")
	}
	if conv.UserA != senderID && conv.UserB != senderID {
		return nil, apperror.Forbidden("You are not part of this conversation")
	}

	msg := &domain.Message{ID: uuid.New(), ConversationID: conversationID, SenderID: senderID, Body: body}
	if err := u.msgRepo.InsertMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (u *messageUsecase) ListConversations(ctx context.Context, userID string) ([]domain.Conversation, error) {
	return u.msgRepo.ListConversations(ctx, userID)
}

func (u *messageUsecase) ListMessages(ctx context.Context, userID string, conversationID uuid.UUID, page, pageSize int) ([]domain.Message, error) {
	conv, err := u.msgRepo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, apperror.NotFound("Conversation not found")
	}
	if conv.UserA != userID && conv.UserB != userID {
		return nil, apperror.Forbidden("You are not part of this conversation")
	}

	page, pageSize = normalizePage(page, pageSize)
	return u.msgRepo.ListMessages(ctx, conversationID, pageSize, (page-1)*pageSize)
}

func (u *messageUsecase) MarkConversationRead(ctx context.Context, userID string, conversationID uuid.UUID) error {
	conv, err := u.msgRepo.GetConversation(ctx, conversationID)
	if err != nil {
		return err
	}
	if conv == nil {
		return apperror.NotFound("Conversation not found")
	}
	if conv.UserA != userID && conv.UserB != userID {
		return apperror.Forbidden("You are not part of this conversation")
	}
	return u.msgRepo.MarkRead(ctx, conversationID, userID)
}

func (u *messageUsecase) UnreadCount(ctx context.Context, userID string) (int, error) {
	return u.msgRepo.UnreadCount(ctx, userID)
}
