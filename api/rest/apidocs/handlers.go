package apidocs

import (
	"net/http"

	"codeberg.org/aksdemo/server/docs"
	apierrors "codeberg.org/aksdemo/server/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

// serves the registered OpenAPI document
func Handler(c *gin.Context) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		apierrors.InternalError(c, "failed to render api docs", err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}
