package health

import "github.com/gin-gonic/gin"

// registers the probe and version routes for GET and HEAD
func RegisterRoutes(router gin.IRoutes, version string) {
	versionHandler := VersionHandler(version)

	for _, register := range []func(string, ...gin.HandlerFunc) gin.IRoutes{router.GET, router.HEAD} {
		register("/healthz", HealthzHandler)
		register("/health", Handler)
		register("/version", versionHandler)
	}
}
