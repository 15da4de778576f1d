package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Ozerg97/nestle-chat-bot/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger zerolog.Logger, gatherer prometheus.Gatherer) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check and metrics endpoints
	router.GET("/health", handler.HealthCheck)
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	limited := RateLimitMiddleware(cfg.RateLimit.PerIP)

	// Root routes used by the chat front-end
	router.POST("/ask", limited, handler.Ask)
	router.POST("/user_location", handler.UserLocation)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/ask", limited, handler.Ask)
		v1.POST("/user_location", handler.UserLocation)
	}

	return router
}
