package v1

import (
	"net/http"

	"go-alumni-backend/internal/delivery/http/response"
	"go-alumni-backend/internal/domain"
	"go-alumni-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	bookmarkUC domain.BookmarkUsecase
}

func NewBookmarkHandler(protected *gin.RouterGroup, bookmarkUC domain.BookmarkUsecase) {
	handler := &BookmarkHandler{bookmarkUC: bookmarkUC}

	bookmarks := protected.Group("/bookmarks")
	{
		bookmarks.GET("", handler.List)
		bookmarks.POST("/toggle", handler.Toggle)
	}
}

type ToggleBookmarkRequest struct {
	Type     string `json:"type" binding:"required,oneof=job event"`
	EntityID string `json:"entity_id" binding:"required"`
}

// Toggle godoc
// @Summary      Toggle a bookmark
// @Description  Bookmark a job or event if not bookmarked, remove it otherwise
// @Tags         bookmarks
// @Accept       json
// @Produce      json
// @Param        request  body      ToggleBookmarkRequest  true  "Target"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /bookmarks/toggle [post]
// @Security     BearerAuth
func (h *BookmarkHandler) Toggle(c *gin.Context) {
	var req ToggleBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	bookmarked, err := h.bookmarkUC.Toggle(c, userID, domain.BookmarkType(req.Type), req.EntityID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Bookmark toggled", gin.H{"bookmarked": bookmarked})
}

// List godoc
// @Summary      List bookmarks
// @Description  The caller's bookmarked jobs or events with the targets hydrated
// @Tags         bookmarks
// @Produce      json
// @Param        type  query  string  true  "job | event"
// @Success      200  {object}  response.Response
// @Router       /bookmarks [get]
// @Security     BearerAuth
func (h *BookmarkHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	bookmarks, err := h.bookmarkUC.List(c, userID, domain.BookmarkType(c.Query("type")))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Bookmarks", bookmarks)
}
