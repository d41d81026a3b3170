package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"order-intake/pkg/response"
)

// APIKeyHeader carries the shared key sent by the browser extension.
const APIKeyHeader = "X-API-Key"

// Auth rejects requests without the configured API key.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			c.Next()
			return
		}

		got := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.apiKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: rejected %s %s from %s", c.Request.Method, c.FullPath(), c.ClientIP())
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
