package apidocs

import (
	"codeberg.org/aksdemo/server/docs"
	"github.com/gin-gonic/gin"
)

const DocPath = "/swagger/doc.json"

// registers the docs route, stamping the running version into the document
func RegisterRoutes(router gin.IRoutes, version string) {
	docs.SwaggerInfo.Version = version

	router.GET(DocPath, Handler)
}
