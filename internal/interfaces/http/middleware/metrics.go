package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"vitalis/internal/infrastructure/metrics"
)

// Metrics records request counts and latency per route template.
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collector.RecordRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
