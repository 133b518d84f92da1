package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthzHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthzResponse
// @Router /healthz [get]
func HealthzHandler(c *gin.Context) {
	c.JSON(http.StatusOK, HealthzResponse{Status: "ok"})
}

// Handler godoc
// @Summary Health status
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Status: "healthy"})
}

// VersionHandler godoc
// @Summary Application version
// @Description Reports APP_VERSION as read at startup (default 0.1.0)
// @Tags health
// @Produce json
// @Success 200 {object} VersionResponse
// @Router /version [get]
func VersionHandler(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, VersionResponse{Version: version})
	}
}
