package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/observability"
)

// Metrics records request counts and latency labelled by route template, not
// raw path, to keep label cardinality bounded.
func Metrics(m *observability.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		m.Requests.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.Duration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
