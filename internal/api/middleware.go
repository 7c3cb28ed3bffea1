package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"smartmail/pkg/metrics"
)

// MetricsMiddleware records per-request duration labelled by route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		metrics.RecordHTTPRequestDuration(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
