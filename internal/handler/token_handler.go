package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tokengate/internal/handler/middleware"
	"tokengate/internal/model"
	"tokengate/internal/service"
	"tokengate/pkg/crypto"
	"tokengate/pkg/response"
)

const (
	QueryPublicKey = "publicKey"

	MsgPublicKeyMissing = "Public Key parameter is missing."
	MsgTokenNotFound    = "Token data not found."
	MsgStoreUnavailable = "Token store unavailable."
	MsgInternalError    = "Internal server error."
)

type TokenHandler struct {
	tokenService service.TokenService
	logger       *zap.Logger
}

func NewTokenHandler(tokenService service.TokenService, logger *zap.Logger) *TokenHandler {
	return &TokenHandler{
		tokenService: tokenService,
		logger:       logger,
	}
}

// Get handles GET /token?publicKey=<id> and echoes the stored record as is.
func (h *TokenHandler) Get(c *gin.Context) {
	key := model.LookupKey(c.Query(QueryPublicKey))

	record, err := h.tokenService.Lookup(c.Request.Context(), key)
	if err != nil {
		log := h.logger.With(
			zap.String("key_fp", crypto.Fingerprint(key.String())),
			zap.String("request_id", middleware.GetRequestID(c)),
		)
		switch {
		case errors.Is(err, service.ErrPublicKeyMissing):
			log.Debug("lookup rejected", zap.Error(err))
			response.BadRequest(c, MsgPublicKeyMissing)
		case errors.Is(err, service.ErrTokenNotFound):
			log.Debug("token not found")
			response.NotFound(c, MsgTokenNotFound)
		case errors.Is(err, service.ErrStoreUnavailable):
			log.Warn("token store unavailable", zap.Error(err))
			response.ServiceUnavailable(c, MsgStoreUnavailable)
		default:
			log.Error("lookup failed", zap.Error(err))
			response.InternalError(c, MsgInternalError)
		}
		return
	}

	response.Payload(c, record.Data)
}
