package ratelimit

import (
	"fmt"

	apierrors "codeberg.org/aksdemo/server/internal/errors"
	"codeberg.org/aksdemo/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const storePrefix = "aksdemo:ratelimit"

// returns the paths orchestrators poll; they are never limited
func DefaultExemptPaths() []string {
	return []string{"/healthz", "/health"}
}

// creates a limiter backed by Redis when a URL is configured, memory otherwise
func New(cfg Config) (*Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.Rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", cfg.Rate, err)
	}

	l := &Limiter{exempt: make(map[string]struct{}, len(cfg.ExemptPaths))}

	for _, path := range cfg.ExemptPaths {
		l.exempt[path] = struct{}{}
	}

	var store limiter.Store

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}

		l.redis = redis.NewClient(opts)

		store, err = sredis.NewStoreWithOptions(l.redis, limiter.StoreOptions{Prefix: storePrefix})
		if err != nil {
			l.redis.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
			return nil, fmt.Errorf("failed to create redis rate limit store: %w", err)
		}
	} else {
		// the memory store sweeps expired counters from its own goroutine; limiter exposes
		// no way to stop it, it ends when the store is garbage collected
		store = memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          storePrefix,
			CleanUpInterval: limiter.DefaultCleanUpInterval,
		})
	}

	l.limiter = limiter.New(store, rate)

	return l, nil
}

// returns a Gin middleware that rejects clients over the rate with a 429
func (l *Limiter) Middleware() gin.HandlerFunc {
	limit := mgin.NewMiddleware(l.limiter,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			logger.Debug("rate limit reached", "ip", c.ClientIP(), "path", c.Request.URL.Path)
			apierrors.TooManyRequests(c, "")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			apierrors.InternalError(c, "rate limit check failed", err)
		}),
	)

	return func(c *gin.Context) {
		if _, ok := l.exempt[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		limit(c)
	}
}

// reports whether the limiter keeps its counters in Redis
func (l *Limiter) Distributed() bool {
	return l.redis != nil
}

// releases the Redis connection if one was opened.
// a memory store has nothing to release; its sweeper stops once the limiter is unreferenced
func (l *Limiter) Close() error {
	if l.redis == nil {
		return nil
	}

	return l.redis.Close()
}
