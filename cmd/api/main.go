package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-alumni-backend/config"
	_ "go-alumni-backend/docs" // Important for Swagger
	v1 "go-alumni-backend/internal/delivery/http/v1"
	"go-alumni-backend/internal/repository/postgres"
	"go-alumni-backend/internal/usecase"
	"go-alumni-backend/pkg/auth"
	"go-alumni-backend/pkg/database"
	"go-alumni-backend/pkg/email"
	"go-alumni-backend/pkg/logger"
	"go-alumni-backend/pkg/redis"
	"go-alumni-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Alumni Network API
// @version         1.0
// @description     Backend for the alumni networking platform using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting alumni backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting); falls back to in-memory when absent
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	connectionRepo := postgres.NewConnectionRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	eventRepo := postgres.NewEventRepository(dbPool)
	messageRepo := postgres.NewMessageRepository(dbPool)
	bookmarkRepo := postgres.NewBookmarkRepository(dbPool)
	adminRepo := postgres.NewAdminRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable")
	}

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	authUC := usecase.NewAuthUsecase(userRepo, profileRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	connectionUC := usecase.NewConnectionUsecase(connectionRepo, profileRepo)
	jobUC := usecase.NewJobUsecase(jobRepo)
	eventUC := usecase.NewEventUsecase(eventRepo)
	messageUC := usecase.NewMessageUsecase(messageRepo, connectionRepo)
	bookmarkUC := usecase.NewBookmarkUsecase(bookmarkRepo, jobRepo, eventRepo)
	adminUC := usecase.NewAdminUsecase(adminRepo, profileUC)
	contactUC := usecase.NewContactUsecase(emailService)
	healthUC := usecase.NewHealthUsecase(dbPool)

	// 8. Setup Auth Provider (JWKS)
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		ProfileUC:    profileUC,
		ConnectionUC: connectionUC,
		JobUC:        jobUC,
		EventUC:      eventUC,
		MessageUC:    messageUC,
		BookmarkUC:   bookmarkUC,
		AdminUC:      adminUC,
		ContactUC:    contactUC,
		HealthUC:     healthUC,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
