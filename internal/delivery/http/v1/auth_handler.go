package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go-alumni-backend/config"
	"go-alumni-backend/internal/delivery/http/response"
	"go-alumni-backend/internal/domain"
	"go-alumni-backend/pkg/apperror"
	"go-alumni-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	config *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, paramsConfig *config.Config) {
	handler := &AuthHandler{
		authUC: authUC,
		config: paramsConfig,
	}

	// Public Routes
	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/login", handler.Login)
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/forgot-password", handler.ForgotPassword)
		publicAuth.POST("/reset-password", handler.ResetPassword)
		// Email verification is handled directly by Supabase via email link
	}

	// Protected Routes
	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.POST("/sync", handler.SyncProfile)
		protectedAuth.GET("/me", handler.Me)
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	CaptchaToken string `json:"captchaToken"` // Cloudflare Turnstile Token
}

// trimTrailingSlash normalizes the configured Supabase base URL.
func trimTrailingSlash(s string) string {
	if len(s) > 0 && s[len(s)-1] == '/' {
		return s[:len(s)-1]
	}
	return s
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new alumni account with email and password. Supports Turnstile Captcha.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// Direct HTTP call to Supabase Auth so we can pass captcha metadata
	signupURL := fmt.Sprintf("%s/auth/v1/signup", trimTrailingSlash(h.config.SupabaseUrl))
	emailRedirectTo := h.config.FrontendURL + "/auth/callback"

	reqBody := map[string]interface{}{
		"email":    req.Email,
		"password": req.Password,
		"data": map[string]interface{}{
			"role": "alumni",
		},
		"options": map[string]interface{}{
			"emailRedirectTo": emailRedirectTo,
		},
	}
	if req.CaptchaToken != "" {
		reqBody["gotrue_meta_security"] = map[string]interface{}{
			"captcha_token": req.CaptchaToken,
		}
	}
	jsonBody, _ := json.Marshal(reqBody)

	httpReq, err := http.NewRequest("POST", signupURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("apikey", h.config.SupabaseKey)

	// Forward client IP and UA, needed for captcha verification
	httpReq.Header.Set("X-Forwarded-For", c.ClientIP())
	httpReq.Header.Set("User-Agent", c.Request.UserAgent())
	if req.CaptchaToken != "" {
		httpReq.Header.Set("cf-turnstile-response", req.CaptchaToken)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		logger.Log.Error("supabase signup request failed", "error", err)
		c.Error(apperror.New(http.StatusInternalServerError, "Registration service unavailable", err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errResp)
		logger.Log.Warn("supabase signup rejected", "status", resp.StatusCode, "body", errResp)

		msg := "Registration failed"
		if m, ok := errResp["msg"].(string); ok {
			msg = m
		} else if m, ok := errResp["error_description"].(string); ok {
			msg = m
		}
		c.Error(apperror.BadRequest(msg))
		return
	}

	var supabaseUser struct {
		ID          string `json:"id"`
		Email       string `json:"email"`
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&supabaseUser); err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to parse response", err))
		return
	}

	// The user is synced to the local DB on first login, after the email is
	// verified. Auto-confirmed accounts sync immediately.
	msg := "Registration successful. Please check your email to confirm."
	var data interface{}

	if supabaseUser.AccessToken != "" {
		user := &domain.User{
			ID:    supabaseUser.ID,
			Email: req.Email,
			Role:  "alumni",
		}
		if err := h.authUC.EnsureUserExists(c.Request.Context(), user); err != nil {
			c.Error(err)
			return
		}
		msg = "Registration successful"
		data = gin.H{
			"token": supabaseUser.AccessToken,
			"user":  user,
		}
	}

	response.Success(c, http.StatusCreated, msg, data)
}

// Login godoc
// @Summary      User Login
// @Description  Login with email and password via Supabase
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Login Credentials"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	loginURL := fmt.Sprintf("%s/auth/v1/token?grant_type=password", trimTrailingSlash(h.config.SupabaseUrl))

	jsonBody, _ := json.Marshal(map[string]interface{}{
		"email":    req.Email,
		"password": req.Password,
	})

	httpReq, err := http.NewRequest("POST", loginURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("apikey", h.config.SupabaseKey)
	httpReq.Header.Set("X-Forwarded-For", c.ClientIP())
	httpReq.Header.Set("User-Agent", c.Request.UserAgent())

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		logger.Log.Error("supabase login request failed", "error", err)
		c.Error(apperror.New(http.StatusInternalServerError, "Login service unavailable", err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errResp)
		logger.Log.Warn("supabase login rejected", "status", resp.StatusCode)

		// Keep credential errors generic to avoid account enumeration
		msg := "Wrong password or account not found"
		if m, ok := errResp["msg"].(string); ok {
			if m == "Email not confirmed" || m == "captcha verification process failed" {
				msg = m
			}
		}
		c.Error(apperror.Unauthorized(msg))
		return
	}

	var supabaseUser struct {
		User        domain.User `json:"user"`
		AccessToken string      `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&supabaseUser); err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to parse login response", err))
		return
	}

	// Role left empty so an existing role (e.g. admin) is not overwritten
	user := &domain.User{
		ID:    supabaseUser.User.ID,
		Email: supabaseUser.User.Email,
	}
	if err := h.authUC.EnsureUserExists(c.Request.Context(), user); err != nil {
		c.Error(err)
		return
	}

	actualUser, err := h.authUC.GetCurrentUser(c.Request.Context(), user.ID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": supabaseUser.AccessToken,
		"user":  actualUser,
	})
}

// SyncProfile godoc
// @Summary      Sync authenticated user
// @Description  Ensure the Supabase identity exists locally, seeding an empty profile on first call
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/sync [post]
// @Security     BearerAuth
func (h *AuthHandler) SyncProfile(c *gin.Context) {
	user := &domain.User{
		ID:    c.GetString(string(domain.KeyUserID)),
		Email: c.GetString(string(domain.KeyUserEmail)),
		Role:  c.GetString(string(domain.KeyUserRole)),
	}

	if err := h.authUC.EnsureUserExists(c, user); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile synced", user)
}

// Me godoc
// @Summary      Current user
// @Description  Get the authenticated user's account record
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.authUC.GetCurrentUser(c, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", gin.H{"user": user})
}

// ForgotPasswordRequest for requesting a password reset email
type ForgotPasswordRequest struct {
	Email        string `json:"email" binding:"required,email"`
	CaptchaToken string `json:"captchaToken" binding:"required"`
}

// ForgotPassword godoc
// @Summary      Request Password Reset
// @Description  Send password reset email to user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      ForgotPasswordRequest  true  "Email address and captcha"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	// Constant-time response: every path takes at least targetDuration so
	// response timing cannot be used to enumerate accounts.
	start := time.Now()
	const targetDuration = 2 * time.Second

	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// Same response whether the email exists or not
	successMessage := "If an account with that email exists, a password reset link has been sent."

	exists, err := h.authUC.CheckEmailExists(c.Request.Context(), req.Email)
	if err != nil || !exists {
		if err != nil {
			logger.Log.Warn("forgot-password lookup failed", "error", err)
		}
		h.simulateDelay(start, targetDuration)
		response.Success(c, http.StatusOK, successMessage, nil)
		return
	}

	// Supabase /recover expects redirect_to as a query parameter
	u, _ := url.Parse(trimTrailingSlash(h.config.SupabaseUrl) + "/auth/v1/recover")
	q := u.Query()
	q.Set("redirect_to", h.config.FrontendURL+"/auth/update-password")
	u.RawQuery = q.Encode()

	reqBody := map[string]interface{}{"email": req.Email}
	if req.CaptchaToken != "" {
		reqBody["gotrue_meta_security"] = map[string]interface{}{
			"captcha_token": req.CaptchaToken,
		}
	}
	jsonBody, _ := json.Marshal(reqBody)

	httpReq, err := http.NewRequest("POST", u.String(), bytes.NewBuffer(jsonBody))
	if err != nil {
		h.simulateDelay(start, targetDuration)
		response.Success(c, http.StatusOK, successMessage, nil)
		return
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("apikey", h.config.SupabaseKey)
	httpReq.Header.Set("X-Forwarded-For", c.ClientIP())
	httpReq.Header.Set("User-Agent", c.Request.UserAgent())

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		logger.Log.Warn("supabase recovery request failed", "error", err)
		h.simulateDelay(start, targetDuration)
		response.Success(c, http.StatusOK, successMessage, nil)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errResp)
		logger.Log.Warn("supabase recovery rejected", "status", resp.StatusCode, "body", errResp)
		// Still report success; do not reveal whether the email exists
	}

	h.simulateDelay(start, targetDuration)
	response.Success(c, http.StatusOK, successMessage, nil)
}

// simulateDelay pads the response to at least targetDuration from start.
func (h *AuthHandler) simulateDelay(start time.Time, targetDuration time.Duration) {
	elapsed := time.Since(start)
	if elapsed < targetDuration {
		time.Sleep(targetDuration - elapsed)
	}
}

// ResetPasswordRequest for setting a new password
type ResetPasswordRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// ResetPassword godoc
// @Summary      Reset Password
// @Description  Set new password using reset token from email link
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      ResetPasswordRequest  true  "Reset password details"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	updateURL := fmt.Sprintf("%s/auth/v1/user", trimTrailingSlash(h.config.SupabaseUrl))

	jsonBody, _ := json.Marshal(map[string]interface{}{
		"password": req.NewPassword,
	})

	httpReq, err := http.NewRequest("PUT", updateURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("apikey", h.config.SupabaseKey)
	// The access token comes from the password reset link
	httpReq.Header.Set("Authorization", "Bearer "+req.AccessToken)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		logger.Log.Error("supabase password update failed", "error", err)
		c.Error(apperror.New(http.StatusInternalServerError, "Password update service unavailable", err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errResp)

		msg := "Password reset failed"
		if m, ok := errResp["msg"].(string); ok {
			msg = m
		} else if m, ok := errResp["error_description"].(string); ok {
			msg = m
		}
		c.Error(apperror.BadRequest(msg))
		return
	}

	response.Success(c, http.StatusOK, "Password has been reset successfully. You can now login with your new password.", nil)
}
