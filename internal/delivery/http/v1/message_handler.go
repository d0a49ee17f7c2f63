package v1

import (
	"net/http"
	"strconv"

	"go-alumni-backend/internal/delivery/http/response"
	"go-alumni-backend/internal/domain"
	"go-alumni-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MessageHandler struct {
	messageUC domain.MessageUsecase
}

func NewMessageHandler(protected *gin.RouterGroup, messageUC domain.MessageUsecase) {
	handler := &MessageHandler{messageUC: messageUC}

	msgs := protected.Group("/messages")
	{
		msgs.GET("/conversations", handler.ListConversations)
		msgs.POST("/conversations", handler.StartConversation)
		msgs.GET("/conversations/:id", handler.ListMessages)
		msgs.POST("/conversations/:id", handler.Send)
		msgs.PUT("/conversations/:id/read", handler.MarkRead)
		msgs.GET("/unread-count", handler.UnreadCount)
	}
}

type StartConversationRequest struct {
	RecipientID string `json:"recipient_id" binding:"required,uuid"`
	Body        string `json:"body" binding:"required"`
}

type SendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// StartConversation godoc
// @Summary      Start a conversation
// @Description  Open (or reuse) a conversation with an accepted connection and send the first message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        request  body      StartConversationRequest  true  "Recipient and message"
// @Success      201  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /messages/conversations [post]
// @Security     BearerAuth
func (h *MessageHandler) StartConversation(c *gin.Context) {
	var req StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	conv, err := h.messageUC.StartConversation(c, userID, req.RecipientID, req.Body)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Conversation started", conv)
}

// ListConversations godoc
// @Summary      List conversations
// @Description  The caller's conversations newest first with peer, unread count and last message preview
// @Tags         messages
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /messages/conversations [get]
// @Security     BearerAuth
func (h *MessageHandler) ListConversations(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	convs, err := h.messageUC.ListConversations(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Conversations", convs)
}

// ListMessages godoc
// @Summary      List messages in a conversation
// @Tags         messages
// @Produce      json
// @Param        id         path   string  true   "Conversation ID"
// @Param        page       query  int     false  "Page number"
// @Param        page_size  query  int     false  "Page size"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /messages/conversations/{id} [get]
// @Security     BearerAuth
func (h *MessageHandler) ListMessages(c *gin.Context) {
	convID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid conversation ID"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	userID := c.GetString(string(domain.KeyUserID))
	msgs, err := h.messageUC.ListMessages(c, userID, convID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Messages", msgs)
}

// Send godoc
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Conversation ID"
// @Param        message  body      SendMessageRequest  true  "Message"
// @Success      201  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /messages/conversations/{id} [post]
// @Security     BearerAuth
func (h *MessageHandler) Send(c *gin.Context) {
	convID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid conversation ID"))
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	msg, err := h.messageUC.SendMessage(c, userID, convID, req.Body)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Message sent", msg)
}

// MarkRead godoc
// @Summary      Mark a conversation read
// @Tags         messages
// @Produce      json
// @Param        id   path      string  true  "Conversation ID"
// @Success      200  {object}  response.Response
// @Router       /messages/conversations/{id}/read [put]
// @Security     BearerAuth
func (h *MessageHandler) MarkRead(c *gin.Context) {
	convID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid conversation ID"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.messageUC.MarkConversationRead(c, userID, convID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Conversation marked read", nil)
}

// UnreadCount godoc
// @Summary      Unread message count
// @Description  Total unread messages addressed to the caller, for the navbar badge
// @Tags         messages
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /messages/unread-count [get]
// @Security     BearerAuth
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	count, err := h.messageUC.UnreadCount(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Unread count", gin.H{"count": count})
}
