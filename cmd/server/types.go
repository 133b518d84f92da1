package main

import (
	"net/http"

	"codeberg.org/aksdemo/server/internal/config"
	"codeberg.org/aksdemo/server/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config     *config.Config
	router     *gin.Engine
	httpServer *http.Server
	limiter    *ratelimit.Limiter // nil when RATE_LIMIT is unset
}
