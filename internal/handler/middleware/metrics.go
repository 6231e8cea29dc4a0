package middleware

import (
	"time"

	"flightdeals/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records every request under its route template so that
// path parameters do not explode label cardinality.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
