package middleware

import (
	pkgLog "smart-day-planner/pkg/log"
)

// Config holds middleware settings.
type Config struct {
	// RateLimitPerMin caps optimization requests per client per minute.
	RateLimitPerMin int
}

type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

func New(l pkgLog.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
