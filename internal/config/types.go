package config

import "time"

// selects which demo service the binary behaves as
type Variant string

const (
	// AKS deployment demo: hello message on "/", default port 5000
	VariantAKS Variant = "aks"

	// security playground: welcome document on "/", default port 8080
	VariantPlayground Variant = "playground"
)

type Config struct {
	Variant     Variant
	Port        int
	Version     string
	Environment string

	// empty disables CORS handling, "*" allows any origin
	CORSOrigins []string

	// ulule/limiter formatted rate (e.g. "100-M"), empty disables rate limiting
	RateLimit string
	RedisURL  string

	// proxies whose X-Forwarded-For is believed; empty trusts none
	TrustedProxies []string

	DocsEnabled bool
}

type StatusFlags struct {
	Endpoint string
	Timeout  time.Duration
}
