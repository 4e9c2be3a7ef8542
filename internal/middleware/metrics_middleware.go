package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"genesis-backend-go/internal/metrics"
)

// Metrics records request counts and latency per route. The route label
// uses the registered route pattern, not the raw URL, to keep the label
// cardinality bounded.
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
