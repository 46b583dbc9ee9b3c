package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/employee-portal/internal/audit"
)

// Origin stamps the client address on the request context for audit entries.
func Origin() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(audit.WithOrigin(c.Request.Context(), c.ClientIP()))
		c.Next()
	}
}
