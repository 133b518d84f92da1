package ratelimit

import (
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
)

// holds rate limiting configuration
type Config struct {
	// limiter formatted rate, e.g. "100-M" (100 requests per minute per client IP)
	Rate string

	// optional; counters are kept in process memory when empty
	RedisURL string

	// paths that bypass rate limiting (probes)
	ExemptPaths []string
}

// per-client-IP request limiter
type Limiter struct {
	limiter *limiter.Limiter
	redis   *redis.Client
	exempt  map[string]struct{}
}
