package welcome

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	helloMessage      = "Hello from AKS demo app"
	playgroundMessage = "Welcome to Python Webapp Security Playground"

	// the playground reports its own fixed version, independent of APP_VERSION
	playgroundVersion = "1.0.0"
)

// HelloHandler godoc
// @Summary Welcome message
// @Description aks variant returns HelloResponse, playground variant returns PlaygroundResponse
// @Tags welcome
// @Produce json
// @Success 200 {object} HelloResponse "aks variant (schema below); playground variant returns #/definitions/welcome.PlaygroundResponse"
// @Router / [get]
func HelloHandler(c *gin.Context) {
	c.JSON(http.StatusOK, HelloResponse{Message: helloMessage})
}

// serves "/" when APP_VARIANT=playground; documented alongside HelloHandler
func PlaygroundHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PlaygroundResponse{
		Message: playgroundMessage,
		Status:  "healthy",
		Version: playgroundVersion,
	})
}
