package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Recovery())
	router.NoRoute(NoRoute())

	return router
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}

func TestNoRoute_ReturnsJSON404(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	resp := decodeError(t, w)
	assert.Equal(t, CodeNotFound, resp.Error)
	assert.Equal(t, "route not found", resp.Message)
}

func TestNoMethod_ReturnsJSON405WithAllow(t *testing.T) {
	router := newTestRouter()
	router.HandleMethodNotAllowed = true
	router.NoMethod(NoMethod(router.Routes))

	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) }
	router.GET("/healthz", ok)
	router.HEAD("/healthz", ok)
	router.GET("/version", ok)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/healthz", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "GET, HEAD", w.Header().Get("Allow"))

	resp := decodeError(t, w)
	assert.Equal(t, CodeMethodNotAllowed, resp.Error)
	assert.Equal(t, "DELETE not allowed on /healthz", resp.Message)
}

func TestRecovery_ReturnsJSON500(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	router := newTestRouter()
	router.GET("/boom", func(c *gin.Context) {
		panic("unexpected")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, CodeServerError, resp.Error)
	assert.Equal(t, "panic: unexpected", resp.Details)
}

func TestTooManyRequests_DefaultMessage(t *testing.T) {
	router := newTestRouter()
	router.GET("/limited", func(c *gin.Context) {
		TooManyRequests(c, "")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, CodeTooManyRequests, resp.Error)
	assert.Equal(t, "too many requests", resp.Message)
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category string
		prodMsg  string
	}{
		{"deadline", context.DeadlineExceeded, CategoryTimeout, "request timed out"},
		{"canceled", fmt.Errorf("flush: %w", context.Canceled), CategoryTimeout, "request canceled"},
		{"redis", fmt.Errorf("redis: connection refused"), CategoryNetwork, "connection error occurred"},
		{"not found", fmt.Errorf("key not found"), CategoryNotFound, "resource not found"},
		{"invalid", fmt.Errorf("invalid rate format"), CategoryValidation, "validation failed"},
		{"unknown", fmt.Errorf("boom"), CategoryUnknown, "an error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENVIRONMENT", "production")

			info := classifyError(tt.err)
			assert.Equal(t, tt.category, info.category)
			assert.Equal(t, tt.prodMsg, sanitizeError(tt.err))

			t.Setenv("ENVIRONMENT", "development")
			assert.Equal(t, tt.err.Error(), sanitizeError(tt.err))
		})
	}

	assert.Empty(t, sanitizeError(nil))
}
