package config

import (
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultStatusTimeout = 5 * time.Second

// parses CLI flags for the status command
func ParseStatusFlags(args []string) StatusFlags {
	defaults := DefaultStatusFlags()

	fs := flag.NewFlagSet("status", flag.ExitOnError)
	endpoint := fs.String("endpoint", defaults.Endpoint, "base URL of the running server")
	timeout := fs.Duration("timeout", defaults.Timeout, "per-request timeout")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return StatusFlags{Endpoint: *endpoint, Timeout: *timeout}
}

// returns default flags for the status command.
// without STATUS_ENDPOINT the server's own PORT/APP_VARIANT pick the local port
func DefaultStatusFlags() StatusFlags {
	endpoint := os.Getenv("STATUS_ENDPOINT")
	if endpoint == "" {
		variant := Variant(strings.ToLower(strings.TrimSpace(os.Getenv("APP_VARIANT"))))
		if !variant.Valid() {
			variant = VariantAKS
		}

		port, err := parsePort(os.Getenv("PORT"), variant.DefaultPort())
		if err != nil {
			port = variant.DefaultPort()
		}

		endpoint = "http://" + net.JoinHostPort("localhost", strconv.Itoa(port))
	}

	return StatusFlags{Endpoint: endpoint, Timeout: defaultStatusTimeout}
}
