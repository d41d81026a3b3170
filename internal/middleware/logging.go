package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"order-intake/pkg/log"
)

// RequestIDHeader is echoed back so clients can quote it in reports.
const RequestIDHeader = "X-Request-ID"

// Logging tags the request context with a request id, then logs and
// records every finished request.
func (m Middleware) Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header(RequestIDHeader, reqID)
		ctx := log.WithFields(c.Request.Context(), "request_id", reqID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		m.metrics.ObserveRequest(route, status, elapsed)
		m.l.Infof(ctx, "%s %s %d %s", c.Request.Method, route, status, elapsed)
	}
}
