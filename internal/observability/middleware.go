package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// unmatchedRoute is the route label for requests that matched no registered route.
const unmatchedRoute = "unmatched"

// Middleware records keygate_requests_total and keygate_request_duration_seconds
// for every request passing through the engine.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		// Status class label like "2xx", "4xx", "5xx".
		status := strconv.Itoa(c.Writer.Status()/100) + "xx"

		RequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
