package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"genesis-backend-go/internal/core"
	"genesis-backend-go/internal/metrics"
	"genesis-backend-go/internal/middleware"
)

// Services bundles the application services consumed by the HTTP layer.
type Services struct {
	Sync     core.SyncService
	Message  core.MessageService
	File     core.FileService
	Settings core.SettingsService
	Question core.QuestionService
}

// RouterConfig carries the knobs RegisterRoutes needs beyond the
// services themselves.
type RouterConfig struct {
	MaxUploadBytes int64
	Gatherer       prometheus.Gatherer
}

const serviceName = "genesis-backend"

// RegisterRoutes wires every endpoint onto the router. Public routes
// (/, /health, /metrics) bypass the auth middleware; everything else is
// grouped behind token verification and the per-user rate limiter.
func RegisterRoutes(
	router *gin.Engine,
	services Services,
	authMW *middleware.AuthMiddleware,
	limiter *middleware.RateLimiter,
	collector *metrics.Collector,
	cfg RouterConfig,
	logger *zap.Logger,
) {
	if logger == nil {
		logger = zap.NewNop()
	}

	syncHandler := NewSyncHandler(services.Sync, collector)
	messageHandler := NewMessageHandler(services.Message)
	fileHandler := NewFileHandler(services.File, cfg.MaxUploadBytes, logger)
	adminHandler := NewAdminHandler(services.Settings)
	questionHandler := NewQuestionHandler(services.Question)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": serviceName,
			"status":  "running",
			"time":    time.Now().UTC().Format(time.RFC3339),
			"endpoints": []string{
				"GET /health",
				"GET /metrics",
				"POST /sendMessage",
				"POST /importFile",
				"POST /toggleRoot",
				"GET /getAIQuestions",
				"POST /syncTasks",
			},
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": serviceName})
	})

	if cfg.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(cfg.Gatherer)))
	}

	protected := router.Group("/")
	protected.Use(authMW.Authenticate())
	if limiter != nil {
		protected.Use(limiter.Middleware())
	}

	protected.POST("/sendMessage", messageHandler.SendMessage)
	protected.POST("/importFile", fileHandler.ImportFile)
	protected.POST("/toggleRoot", authMW.AdminOnly(), adminHandler.ToggleRoot)
	protected.GET("/getAIQuestions", questionHandler.GetQuestions)
	protected.POST("/syncTasks", syncHandler.SyncTasks)
}
