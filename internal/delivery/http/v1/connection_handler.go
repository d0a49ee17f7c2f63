package v1

import (
	"net/http"

	"go-alumni-backend/internal/delivery/http/response"
	"go-alumni-backend/internal/domain"
	"go-alumni-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ConnectionHandler struct {
	connUC domain.ConnectionUsecase
}

func NewConnectionHandler(protected *gin.RouterGroup, connUC domain.ConnectionUsecase, connectLimiter gin.HandlerFunc) {
	handler := &ConnectionHandler{connUC: connUC}

	conns := protected.Group("/connections")
	{
		conns.GET("", handler.List)
		conns.GET("/requests", handler.ListIncoming)
		conns.GET("/gate", handler.Gate)
		conns.POST("", connectLimiter, handler.Send)
		conns.PUT("/:id", handler.Respond)
		conns.DELETE("/:id", handler.Remove)
	}
}

type SendConnectionRequest struct {
	RecipientID string `json:"recipient_id" binding:"required,uuid"`
}

type RespondConnectionRequest struct {
	Accept bool `json:"accept"`
}

// Send godoc
// @Summary      Send connection request
// @Description  Send a connection request; both profiles must pass the completion gate
// @Tags         connections
// @Accept       json
// @Produce      json
// @Param        request  body      SendConnectionRequest  true  "Recipient"
// @Success      201  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /connections [post]
// @Security     BearerAuth
func (h *ConnectionHandler) Send(c *gin.Context) {
	var req SendConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	conn, err := h.connUC.SendRequest(c, userID, req.RecipientID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Connection request sent", conn)
}

// Respond godoc
// @Summary      Answer a connection request
// @Description  Accept or reject a pending request (recipient only)
// @Tags         connections
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Connection ID"
// @Param        request  body      RespondConnectionRequest  true  "Decision"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /connections/{id} [put]
// @Security     BearerAuth
func (h *ConnectionHandler) Respond(c *gin.Context) {
	connID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid connection ID"))
		return
	}

	var req RespondConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	conn, err := h.connUC.Respond(c, userID, connID, req.Accept)
	if err != nil {
		c.Error(err)
		return
	}

	msg := "Connection request rejected"
	if req.Accept {
		msg = "Connection request accepted"
	}
	response.Success(c, http.StatusOK, msg, conn)
}

// Remove godoc
// @Summary      Remove a connection
// @Tags         connections
// @Produce      json
// @Param        id   path      string  true  "Connection ID"
// @Success      200  {object}  response.Response
// @Router       /connections/{id} [delete]
// @Security     BearerAuth
func (h *ConnectionHandler) Remove(c *gin.Context) {
	connID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid connection ID"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.connUC.Remove(c, userID, connID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Connection removed", nil)
}

// List godoc
// @Summary      List connections
// @Description  List the caller's connections with peer summaries, optionally filtered by status
// @Tags         connections
// @Produce      json
// @Param        status  query  string  false  "pending | accepted | rejected"
// @Success      200  {object}  response.Response
// @Router       /connections [get]
// @Security     BearerAuth
func (h *ConnectionHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	status := domain.ConnectionStatus(c.Query("status"))

	conns, err := h.connUC.ListConnections(c, userID, status)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Connections", conns)
}

// ListIncoming godoc
// @Summary      Incoming connection requests
// @Tags         connections
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /connections/requests [get]
// @Security     BearerAuth
func (h *ConnectionHandler) ListIncoming(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	conns, err := h.connUC.ListIncomingRequests(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Incoming requests", conns)
}

// Gate godoc
// @Summary      Networking gate state
// @Description  Check whether the caller may participate in networking, with missing fields for the UI
// @Tags         connections
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /connections/gate [get]
// @Security     BearerAuth
func (h *ConnectionHandler) Gate(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	gate, err := h.connUC.CheckGate(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Gate state", gate)
}
