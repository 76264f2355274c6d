package middleware

import (
	"qr-menu/pkg/log"
)

// Config is the dependency bag passed to New().
type Config struct {
	AdminAPIKey     string
	RateLimitPerMin int
	RateLimitBurst  int
}

type Middleware struct {
	l        log.Logger
	adminKey string
	limiter  *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:        l,
		adminKey: cfg.AdminAPIKey,
		limiter:  newRateLimiter(cfg.RateLimitPerMin, cfg.RateLimitBurst),
	}
}
