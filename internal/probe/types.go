package probe

import (
	"net/http"
	"time"
)

// issues GET requests against a running demo server
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// outcome of probing one route
type Check struct {
	Path     string
	Status   int
	Body     map[string]string
	Latency  time.Duration
	Err      error
	Required bool
}

// collected checks for one instance
type Report struct {
	Endpoint string
	Checks   []Check
}
