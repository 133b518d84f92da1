package main

import (
	"codeberg.org/aksdemo/server/api/rest/apidocs"
	"codeberg.org/aksdemo/server/api/rest/health"
	"codeberg.org/aksdemo/server/api/rest/welcome"
	apierrors "codeberg.org/aksdemo/server/internal/errors"
	"codeberg.org/aksdemo/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// sets up all routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	cfg := server.config

	router.Use(apierrors.Recovery(), logger.Middleware())

	if len(cfg.CORSOrigins) > 0 {
		router.Use(CORSMiddleware(cfg.CORSOrigins))
	}

	if server.limiter != nil {
		router.Use(server.limiter.Middleware())
	}

	router.HandleMethodNotAllowed = true
	router.NoRoute(apierrors.NoRoute())
	router.NoMethod(apierrors.NoMethod(router.Routes))

	health.RegisterRoutes(router, cfg.Version)
	welcome.RegisterRoutes(router, cfg.Variant)

	if cfg.DocsEnabled {
		apidocs.RegisterRoutes(router, cfg.Version)
	}
}
