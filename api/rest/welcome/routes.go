package welcome

import (
	"codeberg.org/aksdemo/server/internal/config"
	"github.com/gin-gonic/gin"
)

// registers the root route for the given variant, for GET and HEAD
func RegisterRoutes(router gin.IRoutes, variant config.Variant) {
	handler := HelloHandler
	if variant == config.VariantPlayground {
		handler = PlaygroundHandler
	}

	router.GET("/", handler)
	router.HEAD("/", handler)
}
