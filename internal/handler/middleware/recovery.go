package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tokengate/pkg/response"
)

func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", GetRequestID(c)),
				)
				response.InternalError(c, "Internal server error.")
				c.Abort()
			}
		}()
		c.Next()
	}
}
