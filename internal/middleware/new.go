package middleware

import (
	"intent-classifier/pkg/log"
)

// Config tunes the shared HTTP middleware.
type Config struct {
	// RateLimitPerMin is the per-client request budget for classification
	// endpoints. Zero disables rate limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	cfg     Config
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	m := Middleware{
		l:   l,
		cfg: cfg,
	}
	if cfg.RateLimitPerMin > 0 {
		m.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return m
}
