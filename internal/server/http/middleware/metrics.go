package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/metrics"
)

// Metrics records request count, latency and in-flight requests by route template.
func Metrics(m *metrics.HTTP) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		done := m.Begin()
		c.Next()
		done(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
