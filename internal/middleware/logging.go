package middleware

import (
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/client-portal-api/internal/errors"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request. Bodies are never logged.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("http",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("dur", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		)
	}
}

// Recovery turns a panic into a generic 500 response.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic",
					zap.Any("reason", r),
					zap.ByteString("stack", debug.Stack()),
					zap.String("path", c.Request.URL.Path),
				)
				apierrors.InternalError(c, "")
			}
		}()
		c.Next()
	}
}
