package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/mapview-backend/internal/pkg/httputil"
)

// Recovery turns a handler panic into a 500 with the standard error body.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			logger.Error("panic recovered",
				zap.Any("error", rec),
				zap.ByteString("stack", debug.Stack()),
				zap.String("method", c.Request.Method),
				zap.String("route", c.FullPath()),
				zap.String("request_id", c.GetString(RequestIDKey)),
			)

			if !c.Writer.Written() {
				httputil.InternalError(c)
			}
			c.Abort()
		}()
		c.Next()
	}
}
