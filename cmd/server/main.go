package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"genesis-backend-go/internal/api"
	"genesis-backend-go/internal/config"
	"genesis-backend-go/internal/core"
	"genesis-backend-go/internal/db"
	"genesis-backend-go/internal/metrics"
	"genesis-backend-go/internal/middleware"
)

func main() {
	// 1. Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 2. Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// 3. Initialize Firebase (Auth, Firestore and Storage)
	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()
	if err := db.InitFirebase(initCtx, cfg); err != nil {
		logger.Fatal("Failed to initialize Firebase services", zap.Error(err))
	}
	fsClient := db.GetFirestoreClient()
	defer fsClient.Close()

	// 4. Wire repositories
	taskRepo := db.NewFirestoreTaskRepository(fsClient)
	userRepo := db.NewFirestoreUserRepository(fsClient)
	messageRepo := db.NewFirestoreMessageRepository(fsClient)
	settingsRepo := db.NewFirestoreSettingsRepository(fsClient)
	auditRepo := db.NewFirestoreAuditRepository(fsClient)
	fileStore := db.NewCloudStorageFileStore(db.GetStorageBucket())

	// 5. Wire services
	verifier := core.NewFirebaseTokenVerifier(db.GetFirebaseAuthClient())
	authService := core.NewAuthService(verifier, userRepo, logger)
	auditService := core.NewAuditService(auditRepo)
	services := api.Services{
		Sync:     core.NewSyncService(taskRepo, logger),
		Message:  core.NewMessageService(messageRepo, logger),
		File:     core.NewFileService(fileStore, auditService, cfg.MaxUploadBytes, logger),
		Settings: core.NewSettingsService(settingsRepo, auditService, logger),
		Question: core.NewQuestionService(),
	}

	// 6. Set Gin mode
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// 7. Build the router with global middleware
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.Metrics(collector))
	if cfg.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(cfg))
	} else {
		logger.Warn("CLIENT_URL is not set; CORS middleware disabled")
	}
	router.Use(middleware.RequestTimeout(time.Duration(cfg.RequestTimeoutSeconds) * time.Second))

	authMW := middleware.NewAuthMiddleware(authService, logger)
	limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:            rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0),
		Burst:           cfg.RateLimitBurst,
		CleanupInterval: 5 * time.Minute,
	}, logger)
	defer limiter.Stop()

	// 8. Register routes
	api.RegisterRoutes(router, services, authMW, limiter, collector, api.RouterConfig{
		MaxUploadBytes: cfg.MaxUploadBytes,
		Gatherer:       registry,
	}, logger)

	// 9. Start the HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: time.Duration(cfg.RequestTimeoutSeconds+5) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("port", cfg.Port),
			zap.String("mode", gin.Mode()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to run server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}
