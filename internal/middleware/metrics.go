package middleware

import (
	"time"

	"teamhub/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count, latency and in-flight requests. Requests
// that match no route are labelled "unmatched".
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.HTTPRequestsInFlight.Inc()
		defer m.HTTPRequestsInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
