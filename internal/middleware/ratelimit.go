package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/employee-portal/internal/httperr"
	"github.com/BruksfildServices01/employee-portal/internal/limiter"
)

// RateLimit rejects callers whose client IP ran out of attempts. Limiter
// errors let the request through.
func RateLimit(l limiter.Limiter, log *zap.Logger, onDenied func()) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn("rate limiter unavailable", zap.Error(err), zap.String("path", c.FullPath()))
			c.Next()
			return
		}
		if !ok {
			if onDenied != nil {
				onDenied()
			}
			httperr.AbortWith(c, httperr.ErrRateLimited())
			return
		}
		c.Next()
	}
}
