package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultVersion     = "0.1.0"
	DefaultEnvironment = "development"
)

// returns the port the variant listens on when PORT is unset
func (v Variant) DefaultPort() int {
	if v == VariantPlayground {
		return 8080
	}

	return 5000
}

// reports whether v names a known variant
func (v Variant) Valid() bool {
	return v == VariantAKS || v == VariantPlayground
}

// returns the listen address on all interfaces
func (c *Config) Address() string {
	return net.JoinHostPort("0.0.0.0", strconv.Itoa(c.Port))
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - containers usually have no .env file
	}

	variant := Variant(strings.ToLower(strings.TrimSpace(os.Getenv("APP_VARIANT"))))
	if variant == "" {
		variant = VariantAKS
	}

	if !variant.Valid() {
		return nil, fmt.Errorf("APP_VARIANT must be %q or %q, got %q", VariantAKS, VariantPlayground, variant)
	}

	port, err := parsePort(os.Getenv("PORT"), variant.DefaultPort())
	if err != nil {
		return nil, err
	}

	version := os.Getenv("APP_VERSION")
	if version == "" {
		version = DefaultVersion
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = DefaultEnvironment
	}

	docsEnabled := false
	if raw := os.Getenv("DOCS_ENABLED"); raw != "" {
		docsEnabled, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("DOCS_ENABLED must be a boolean: %w", err)
		}
	}

	corsOrigins := splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))
	for _, origin := range corsOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS entry %q must be \"*\" or start with http:// or https://", origin)
		}
	}

	return &Config{
		Variant:        variant,
		Port:           port,
		Version:        version,
		Environment:    environment,
		CORSOrigins:    corsOrigins,
		RateLimit:      strings.TrimSpace(os.Getenv("RATE_LIMIT")),
		RedisURL:       strings.TrimSpace(os.Getenv("REDIS_URL")),
		TrustedProxies: splitList(os.Getenv("TRUSTED_PROXIES")),
		DocsEnabled:    docsEnabled,
	}, nil
}

func parsePort(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}

	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("PORT must be an integer: %w", err)
	}

	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("PORT must be between 1 and 65535, got %d", port)
	}

	return port, nil
}

// splits a comma-separated list, dropping empty entries
func splitList(raw string) []string {
	var out []string

	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}
