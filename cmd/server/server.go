package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"codeberg.org/aksdemo/server/internal/config"
	"codeberg.org/aksdemo/server/internal/logger"
	"codeberg.org/aksdemo/server/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

const (
	readTimeout  = 15 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &Server{config: cfg}

	if cfg.RateLimit != "" {
		limiter, err := ratelimit.New(ratelimit.Config{
			Rate:        cfg.RateLimit,
			RedisURL:    cfg.RedisURL,
			ExemptPaths: ratelimit.DefaultExemptPaths(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize rate limiter: %w", err)
		}

		server.limiter = limiter

		logger.Info("rate limiting enabled",
			"rate", cfg.RateLimit,
			"redis", limiter.Distributed(),
		)

		if cfg.IsProduction() && !limiter.Distributed() {
			logger.Warn("rate limit counters are per process; set REDIS_URL to share them across replicas")
		}
	}

	router := gin.New()
	server.router = router

	// client IPs key the rate limiter, so X-Forwarded-For is only read from listed proxies
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		if server.limiter != nil {
			server.limiter.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		}
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}

	RegisterRoutes(router, server)

	server.httpServer = &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return server, nil
}

// binds the configured address; a port already in use fails here, before serving starts
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", s.httpServer.Addr, err)
	}

	return ln, nil
}

// serves on ln until Shutdown is called
func (s *Server) Serve(ln net.Listener) error {
	logger.Info("server listening", "addr", ln.Addr().String(), "variant", s.config.Variant)

	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped unexpectedly: %w", err)
	}

	return nil
}

// drains in-flight requests and releases the rate limiter store
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)

	if s.limiter != nil {
		s.limiter.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	}

	return err
}

// returns the HTTP handler (the gin engine)
func (s *Server) Handler() http.Handler {
	return s.router
}
