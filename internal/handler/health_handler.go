package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tokengate/internal/service"
	"tokengate/pkg/response"
)

type HealthHandler struct {
	tokenService service.TokenService
	logger       *zap.Logger
}

func NewHealthHandler(tokenService service.TokenService, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{tokenService: tokenService, logger: logger}
}

// Live always answers while the process serves HTTP.
func (h *HealthHandler) Live(c *gin.Context) {
	response.Status(c, http.StatusOK, "ok", nil)
}

// Ready answers 503 while the token store cannot be reached.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.tokenService.Ready(c.Request.Context()); err != nil {
		h.logger.Warn("readiness check failed", zap.Error(err))
		response.Status(c, http.StatusServiceUnavailable, "unavailable", service.ErrStoreUnavailable)
		return
	}
	response.Status(c, http.StatusOK, "ready", nil)
}
