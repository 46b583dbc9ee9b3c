package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/employee-portal/internal/metrics"
)

// Instrument labels requests by route template so ids do not explode the
// series count.
func Instrument(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		done := m.Begin()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		done(c.Request.Method, route, c.Writer.Status())
	}
}
