package middleware

import (
	"order-intake/pkg/log"
	"order-intake/pkg/metrics"
)

// Config holds the settings shared by the HTTP middlewares.
type Config struct {
	// APIKey guards the order routes. Empty disables the check.
	APIKey string
	// RateLimitPerMin is the per-client budget. Zero disables limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	metrics *metrics.Registry
	apiKey  string
	limiter *rateLimiter
}

func New(l log.Logger, m *metrics.Registry, cfg Config) Middleware {
	mw := Middleware{
		l:       l,
		metrics: m,
		apiKey:  cfg.APIKey,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
