package ratelimit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "codeberg.org/aksdemo/server/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(t *testing.T, rate string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l, err := New(Config{Rate: rate, ExemptPaths: DefaultExemptPaths()})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, l.Close()) })

	router := gin.New()
	router.Use(l.Middleware())

	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) }
	router.GET("/", ok)
	router.GET("/healthz", ok)

	return router
}

func get(router *gin.Engine, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestMiddleware_RejectsOverLimit(t *testing.T) {
	router := newLimitedRouter(t, "2-M")

	for i := 0; i < 2; i++ {
		w := get(router, "/", "203.0.113.7:4000")
		require.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := get(router, "/", "203.0.113.7:4000")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apierrors.CodeTooManyRequests, resp.Error)
}

func TestMiddleware_LimitsPerClient(t *testing.T) {
	router := newLimitedRouter(t, "1-M")

	assert.Equal(t, http.StatusOK, get(router, "/", "203.0.113.7:4000").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(router, "/", "203.0.113.7:4000").Code)

	// a different client has its own budget
	assert.Equal(t, http.StatusOK, get(router, "/", "198.51.100.9:4000").Code)
}

func TestMiddleware_ExemptPathsNeverLimited(t *testing.T) {
	router := newLimitedRouter(t, "1-M")

	for i := 0; i < 5; i++ {
		w := get(router, "/healthz", "203.0.113.7:4000")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestNew_InvalidRate(t *testing.T) {
	_, err := New(Config{Rate: "lots"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rate")
}

func TestNew_InvalidRedisURL(t *testing.T) {
	_, err := New(Config{Rate: "10-S", RedisURL: "ftp://nope"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid redis url")
}

func TestMemoryStore(t *testing.T) {
	l, err := New(Config{Rate: "10-S"})
	require.NoError(t, err)

	assert.False(t, l.Distributed())
	assert.NoError(t, l.Close())
}
