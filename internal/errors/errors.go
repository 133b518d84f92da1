package errors

import (
	"fmt"
	"net/http"
	"slices"
	"sort"
	"strings"

	"codeberg.org/aksdemo/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP handlers and middleware:
//   - Use errors.InternalError(), errors.NotFound(), etc.
//     These functions handle both logging and HTTP response automatically
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For config/startup/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let main decide how to log and exit

// standard error codes
const (
	CodeNotFound         = "not_found"
	CodeMethodNotAllowed = "method_not_allowed"
	CodeServerError      = "server_error"
	CodeTooManyRequests  = "too_many_requests"
)

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   CodeNotFound,
		Message: message,
	})
}

// returns a 405 method not allowed error listing the allowed methods
func MethodNotAllowed(c *gin.Context, allowed []string) {
	if len(allowed) > 0 {
		c.Header("Allow", strings.Join(allowed, ", "))
	}

	c.JSON(http.StatusMethodNotAllowed, ErrorResponse{
		Error:   CodeMethodNotAllowed,
		Message: c.Request.Method + " not allowed on " + c.Request.URL.Path,
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	// log full error server-side with context
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	// return sanitized error to client
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: sanitizeError(err),
	})
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Error:   CodeTooManyRequests,
		Message: message,
	})
}

// handler for router.NoRoute: every unmatched path is a JSON 404
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		NotFound(c, "route")
	}
}

// handler for router.NoMethod (requires HandleMethodNotAllowed).
// routes is consulted per request so the Allow header tracks the registered table
func NoMethod(routes func() gin.RoutesInfo) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		var allowed []string
		for _, route := range routes() {
			if route.Path == path && !slices.Contains(allowed, route.Method) {
				allowed = append(allowed, route.Method)
			}
		}

		sort.Strings(allowed)
		MethodNotAllowed(c, allowed)
	}
}

// returns a recovery middleware that turns panics into a JSON 500
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		InternalError(c, "", fmt.Errorf("panic: %v", recovered))
		c.Abort()
	})
}

// sanitizes error messages for production
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	return classifyError(err).sanitized
}
