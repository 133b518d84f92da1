package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/aksdemo/server/internal/config"
	"codeberg.org/aksdemo/server/internal/logger"
)

// @title AKS Demo API
// @version 0.1.0
// @description Minimal demo service: health probes, version and a welcome message.

// @license.name MIT

// @BasePath /

const shutdownTimeout = 10 * time.Second

func main() {
	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.FatalErr(err, "failed to load configuration")
	}

	// .env may have set ENVIRONMENT after the logger initialized
	logger.SetDefault(logger.New(cfg.Environment))

	logger.Info("starting demo server",
		"variant", cfg.Variant,
		"version", cfg.Version,
		"environment", cfg.Environment,
	)

	srv, err := NewServer(cfg)
	if err != nil {
		logger.FatalErr(err, "failed to create server")
	}

	ln, err := srv.Listen()
	if err != nil {
		logger.FatalErr(err, "server failed to start", "addr", cfg.Address())
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("shutting down server", "signal", sig.String())
	case err := <-serveErr:
		if err != nil {
			logger.FatalErr(err, "server failed")
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.ErrorErr(err, "server forced to shutdown")
	}

	logger.Info("server stopped")
}
