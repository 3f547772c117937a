package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tokengate/internal/config"
	"tokengate/internal/handler/middleware"
)

func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	tokenHandler *TokenHandler,
	healthHandler *HealthHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health checks
	r.GET("/healthz", healthHandler.Live)
	r.GET("/readyz", healthHandler.Ready)

	// Token lookup
	r.GET("/token", tokenHandler.Get)
	r.HEAD("/token", tokenHandler.Get)

	return r
}
