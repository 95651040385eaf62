package http

import (
	"github.com/gin-gonic/gin"

	"github.com/chronolens/backend/config"
	"github.com/chronolens/backend/internal/observability"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check and metrics endpoints
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(observability.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		concierge := v1.Group("/concierge")
		{
			concierge.POST("/ask", handler.Ask)
		}
	}

	return router
}
