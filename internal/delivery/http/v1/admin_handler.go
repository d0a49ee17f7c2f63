package v1

import (
	"net/http"
	"strconv"

	"go-alumni-backend/internal/delivery/http/response"
	"go-alumni-backend/internal/domain"
	"go-alumni-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
	authUC  domain.AuthUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase, authUC domain.AuthUsecase) {
	handler := &AdminHandler{adminUC: adminUC, authUC: authUC}

	admin := protected.Group("/admin")
	{
		// Dashboard stats
		admin.GET("/stats", handler.GetStats)

		// User management
		admin.GET("/users", handler.ListUsers)
		admin.DELETE("/users/:id", handler.DeleteUser)
		admin.PATCH("/users/:id/disable", handler.DisableUser)
		admin.PATCH("/users/:id/role", handler.AssignRole)

		// Maintenance
		admin.POST("/migrations/profile-completion", handler.RunCompletionBackfill)
	}
}

// GetStats godoc
// @Summary      Get admin dashboard statistics
// @Description  Returns counts for users, profiles, jobs, events and pending connections
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminUC.GetStats(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard statistics", stats)
}

// ListUsers godoc
// @Summary      List all users
// @Description  Returns paginated list of users with profile completion state
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        role     query     string  false  "Filter by role (admin, alumni)"
// @Param        page     query     int     false  "Page number"
// @Param        pageSize query     int     false  "Items per page"
// @Success      200      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	role := c.Query("role")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	result, err := h.adminUC.ListUsers(c, role, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Users list", result)
}

// DisableUser godoc
// @Summary      Disable or enable a user
// @Description  Toggles account access; disabled users are rejected at the auth middleware
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true   "User ID"
// @Param        body     body      object  true   "{ disable: bool }"
// @Success      200      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /admin/users/{id}/disable [patch]
func (h *AdminHandler) DisableUser(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		c.Error(apperror.BadRequest("User ID is required"))
		return
	}

	var body struct {
		Disable bool `json:"disable"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	user, err := h.adminUC.DisableUser(c, userID, body.Disable)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated", user)
}

// AssignRole godoc
// @Summary      Change a user's role
// @Description  Promotes or demotes a user between alumni and admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true   "User ID"
// @Param        body     body      object  true   "{ role: string }"
// @Success      200      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /admin/users/{id}/role [patch]
func (h *AdminHandler) AssignRole(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		c.Error(apperror.BadRequest("User ID is required"))
		return
	}

	var body struct {
		Role string `json:"role" binding:"required,oneof=alumni admin"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(apperror.BadRequest("Role must be 'alumni' or 'admin'"))
		return
	}

	if err := h.authUC.AssignRole(c, userID, body.Role); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Role updated", gin.H{"id": userID, "role": body.Role})
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Permanently deletes a user record
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true   "User ID"
// @Success      200      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		c.Error(apperror.BadRequest("User ID is required"))
		return
	}

	if err := h.adminUC.DeleteUser(c, userID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted", nil)
}

// RunCompletionBackfill godoc
// @Summary      Recompute profile completion for all profiles
// @Description  Recomputes and re-persists the completion percentage and gate flag for every profile. Idempotent.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/migrations/profile-completion [post]
func (h *AdminHandler) RunCompletionBackfill(c *gin.Context) {
	report, err := h.adminUC.RunCompletionBackfill(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Completion backfill finished", report)
}
