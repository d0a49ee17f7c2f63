package v1

import (
	"net/http"
	"strconv"

	"go-alumni-backend/internal/completion"
	"go-alumni-backend/internal/delivery/http/response"
	"go-alumni-backend/internal/domain"
	"go-alumni-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profiles := protected.Group("/profiles")
	{
		profiles.GET("", handler.Directory)
		profiles.GET("/me", handler.GetMine)
		profiles.PUT("/me", handler.UpdateMine)
		profiles.GET("/me/completion", handler.Completion)
		profiles.GET("/:id", handler.GetPublic)
	}
}

type UpdateProfileRequest struct {
	Name           string   `json:"name" binding:"omitempty,max=100"`
	Phone          string   `json:"phone" binding:"omitempty,max=20"`
	Location       string   `json:"location" binding:"omitempty,max=150"`
	Bio            string   `json:"bio" binding:"omitempty,max=2000"`
	GraduationYear int      `json:"graduation_year"`
	Degree         string   `json:"degree" binding:"omitempty,max=100"`
	Major          string   `json:"major" binding:"omitempty,max=100"`
	CurrentTitle   string   `json:"current_title" binding:"omitempty,max=100"`
	CurrentCompany string   `json:"current_company" binding:"omitempty,max=100"`
	LinkedinURL    string   `json:"linkedin_url" binding:"omitempty,url"`
	GithubURL      string   `json:"github_url" binding:"omitempty,url"`
	WebsiteURL     string   `json:"website_url" binding:"omitempty,url"`
	AvatarURL      string   `json:"avatar_url" binding:"omitempty,url"`
	Skills         []string `json:"skills"`
	Interests      []string `json:"interests"`
}

// GetMine godoc
// @Summary      Get own profile
// @Description  Get the authenticated member's full profile with live completion state
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profiles/me [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.profileUC.GetMyProfile(c, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile", profile)
}

// UpdateMine godoc
// @Summary      Update own profile
// @Description  Update profile fields; the completion score is recomputed and persisted in the same transaction
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateProfileRequest  true  "Profile fields"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /profiles/me [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateMine(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	email := c.GetString(string(domain.KeyUserEmail))

	profile := &domain.AlumniProfile{
		UserID:         userID,
		Name:           req.Name,
		Email:          email, // email follows the auth identity
		Phone:          req.Phone,
		Location:       req.Location,
		Bio:            req.Bio,
		GraduationYear: req.GraduationYear,
		Degree:         req.Degree,
		Major:          req.Major,
		CurrentTitle:   req.CurrentTitle,
		CurrentCompany: req.CurrentCompany,
		LinkedinURL:    req.LinkedinURL,
		GithubURL:      req.GithubURL,
		WebsiteURL:     req.WebsiteURL,
		AvatarURL:      req.AvatarURL,
		Skills:         req.Skills,
		Interests:      req.Interests,
	}

	updated, sync, err := h.profileUC.UpdateProfile(c, profile)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", gin.H{
		"profile":    updated,
		"completion": sync,
	})
}

// Completion godoc
// @Summary      Profile completion breakdown
// @Description  Get the weighted completion breakdown, gate state and suggested next steps
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /profiles/me/completion [get]
// @Security     BearerAuth
func (h *ProfileHandler) Completion(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.profileUC.GetMyProfile(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	breakdown := completion.Calculate(profile)
	response.Success(c, http.StatusOK, "Completion breakdown", gin.H{
		"percentage":       breakdown.Percentage,
		"sections":         breakdown.Sections,
		"profile_complete": completion.IsComplete(profile),
		"missing_required": completion.MissingRequired(profile),
		"next_steps":       completion.NextSteps(profile),
	})
}

// GetPublic godoc
// @Summary      View a member's profile
// @Description  Get another member's profile; only profiles passing the completion gate are visible
// @Tags         profiles
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profiles/{id} [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetPublic(c *gin.Context) {
	profile, err := h.profileUC.GetPublicProfile(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile", profile)
}

// Directory godoc
// @Summary      Alumni directory
// @Description  Browse members with completed profiles, filterable by class year, major and search
// @Tags         profiles
// @Produce      json
// @Param        graduation_year  query  int     false  "Class year"
// @Param        major            query  string  false  "Major"
// @Param        search           query  string  false  "Name or company search"
// @Param        page             query  int     false  "Page number"
// @Param        page_size        query  int     false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /profiles [get]
// @Security     BearerAuth
func (h *ProfileHandler) Directory(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	gradYear, _ := strconv.Atoi(c.Query("graduation_year"))

	filter := domain.ProfileFilter{
		GraduationYear: gradYear,
		Major:          c.Query("major"),
		Search:         c.Query("search"),
		Page:           page,
		PageSize:       pageSize,
	}

	profiles, total, err := h.profileUC.ListDirectory(c, filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Directory", gin.H{
		"profiles":  profiles,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}
