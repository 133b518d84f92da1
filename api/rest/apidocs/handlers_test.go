package apidocs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_ServesDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router, "2.3.4")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, DocPath, nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var doc struct {
		Swagger string `json:"swagger"`
		Info    struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "AKS Demo API", doc.Info.Title)
	assert.Equal(t, "2.3.4", doc.Info.Version)

	for _, path := range []string{"/", "/health", "/healthz", "/version"} {
		assert.Contains(t, doc.Paths, path)
	}
}

func TestHandler_RootDocumentsBothVariants(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router, "0.1.0")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, DocPath, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Paths map[string]struct {
			Get struct {
				Responses map[string]struct {
					Description string `json:"description"`
					Schema      struct {
						Ref string `json:"$ref"`
					} `json:"schema"`
				} `json:"responses"`
			} `json:"get"`
		} `json:"paths"`
		Definitions map[string]any `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	ok := doc.Paths["/"].Get.Responses["200"]
	assert.Equal(t, "#/definitions/welcome.HelloResponse", ok.Schema.Ref)
	assert.Contains(t, ok.Description, "#/definitions/welcome.PlaygroundResponse")
	assert.Contains(t, doc.Definitions, "welcome.PlaygroundResponse")
}
