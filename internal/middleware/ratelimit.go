package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"order-intake/pkg/response"
)

const (
	maxTrackedClients = 1000
	clientIdleTTL     = 5 * time.Minute
)

// RateLimit applies a token bucket per client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}
		ip := c.ClientIP()
		if !m.limiter.allow(ip) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %s over %s budget", ip, c.FullPath())
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one bucket per client and forgets idle clients.
type rateLimiter struct {
	buckets *expirable.LRU[string, *rate.Limiter]
	every   rate.Limit
	burst   int
}

// newRateLimiter refills perMin tokens a minute with a burst of a tenth
// of that, never below one.
func newRateLimiter(perMin int) *rateLimiter {
	return &rateLimiter{
		buckets: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, clientIdleTTL),
		every:   rate.Every(time.Minute / time.Duration(perMin)),
		burst:   max(perMin/10, 1),
	}
}

func (rl *rateLimiter) allow(client string) bool {
	bucket, ok := rl.buckets.Get(client)
	if !ok {
		bucket = rate.NewLimiter(rl.every, rl.burst)
		rl.buckets.Add(client, bucket)
	}
	return bucket.Allow()
}
