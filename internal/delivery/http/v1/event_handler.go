package v1

import (
	"net/http"
	"strconv"
	"time"

	"go-alumni-backend/internal/delivery/http/response"
	"go-alumni-backend/internal/domain"
	"go-alumni-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	eventUC domain.EventUsecase
}

func NewEventHandler(protected *gin.RouterGroup, eventUC domain.EventUsecase) {
	handler := &EventHandler{eventUC: eventUC}

	events := protected.Group("/events")
	{
		events.GET("", handler.ListUpcoming)
		events.GET("/mine", handler.ListMine)
		events.GET("/:id", handler.GetDetails)
		events.POST("", handler.Create)
		events.PUT("/:id", handler.Update)
		events.DELETE("/:id", handler.Delete)
		events.PUT("/:id/rsvp", handler.RSVP)
	}
}

type EventRequest struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Description string    `json:"description" binding:"required"`
	Location    string    `json:"location" binding:"omitempty,max=200"`
	Virtual     bool      `json:"virtual"`
	MeetingLink string    `json:"meeting_link" binding:"omitempty,url"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	EndsAt      time.Time `json:"ends_at" binding:"required"`
	Capacity    int       `json:"capacity" binding:"gte=0"`
}

type RSVPRequest struct {
	Status string `json:"status" binding:"required,oneof=going maybe declined"`
}

func (r *EventRequest) toDomain() *domain.Event {
	event := &domain.Event{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Virtual:     r.Virtual,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
		Capacity:    r.Capacity,
	}
	if r.MeetingLink != "" {
		event.MeetingLink = &r.MeetingLink
	}
	return event
}

// Create godoc
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        event  body      EventRequest  true  "Event"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /events [post]
// @Security     BearerAuth
func (h *EventHandler) Create(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	event := req.toDomain()
	if err := h.eventUC.CreateEvent(c, userID, event); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Event created", event)
}

// ListUpcoming godoc
// @Summary      List upcoming events
// @Description  Events that have not ended yet, soonest first, with RSVP counts
// @Tags         events
// @Produce      json
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /events [get]
// @Security     BearerAuth
func (h *EventHandler) ListUpcoming(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	events, total, err := h.eventUC.ListUpcoming(c, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Upcoming events", gin.H{
		"events":    events,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// ListMine godoc
// @Summary      Events I am attending
// @Description  Events the caller RSVP'd going or maybe to
// @Tags         events
// @Produce      json
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /events/mine [get]
// @Security     BearerAuth
func (h *EventHandler) ListMine(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	userID := c.GetString(string(domain.KeyUserID))
	events, total, err := h.eventUC.ListMyEvents(c, userID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "My events", gin.H{
		"events":    events,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetDetails godoc
// @Summary      Event details
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /events/{id} [get]
// @Security     BearerAuth
func (h *EventHandler) GetDetails(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid event ID"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	event, err := h.eventUC.GetEventDetails(c, eventID, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Event details", event)
}

// Update godoc
// @Summary      Update an event
// @Description  Update an event you created (or any event as admin)
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id     path      string        true  "Event ID"
// @Param        event  body      EventRequest  true  "Event"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /events/{id} [put]
// @Security     BearerAuth
func (h *EventHandler) Update(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid event ID"))
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	event := req.toDomain()
	event.ID = eventID
	if err := h.eventUC.UpdateEvent(c, userID, event); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Event updated", event)
}

// Delete godoc
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  response.Response
// @Router       /events/{id} [delete]
// @Security     BearerAuth
func (h *EventHandler) Delete(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid event ID"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.eventUC.DeleteEvent(c, userID, eventID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Event deleted", nil)
}

// RSVP godoc
// @Summary      RSVP to an event
// @Description  Set or change the caller's RSVP. Capacity is enforced for "going".
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Event ID"
// @Param        rsvp  body      RSVPRequest  true  "RSVP"
// @Success      200  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /events/{id}/rsvp [put]
// @Security     BearerAuth
func (h *EventHandler) RSVP(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid event ID"))
		return
	}

	var req RSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.eventUC.SetRSVP(c, userID, eventID, domain.RSVPStatus(req.Status)); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "RSVP saved", gin.H{"status": req.Status})
}
