package v1

import (
	"net/http"
	"time"

	"go-alumni-backend/config"
	"go-alumni-backend/internal/delivery/http/middleware"
	"go-alumni-backend/internal/delivery/http/response"
	"go-alumni-backend/internal/domain"
	"go-alumni-backend/internal/usecase"
	"go-alumni-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	ProfileUC    domain.ProfileUsecase
	ConnectionUC domain.ConnectionUsecase
	JobUC        domain.JobUsecase
	EventUC      domain.EventUsecase
	MessageUC    domain.MessageUsecase
	BookmarkUC   domain.BookmarkUsecase
	AdminUC      domain.AdminUsecase
	ContactUC    domain.ContactUsecase
	HealthUC     usecase.HealthUsecase
	JWKSProvider *auth.Provider
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.GlobalRateLimitMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c))
	})

	// Public routes. Contact form is throttled per IP.
	contactLimiter := middleware.RateLimitMiddleware(
		middleware.ContactRateLimitConfig(deps.Config.RateLimitContactThreshold, window))
	contact := v1.Group("")
	contact.Use(contactLimiter)
	NewContactHandler(contact, deps.ContactUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.AuthUC))
	{
		connectLimiter := middleware.RateLimitMiddleware(
			middleware.ConnectRateLimitConfig(deps.Config.RateLimitConnectThreshold, window))

		// Login/registration endpoints get the strict per-IP limiter
		authPublic := v1.Group("")
		authPublic.Use(middleware.StrictRateLimitMiddleware())
		NewAuthHandler(authPublic, protected, deps.AuthUC, deps.Config)
		NewProfileHandler(protected, deps.ProfileUC)
		NewConnectionHandler(protected, deps.ConnectionUC, connectLimiter)
		NewJobHandler(v1, protected, deps.JobUC)
		NewEventHandler(protected, deps.EventUC)
		NewMessageHandler(protected, deps.MessageUC)
		NewBookmarkHandler(protected, deps.BookmarkUC)
		NewAdminHandler(protected, deps.AdminUC, deps.AuthUC)
	}

	return r
}
