package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// routes probed by Run, in order; only /healthz decides health
var probedRoutes = []struct {
	path     string
	required bool
}{
	{"/healthz", true},
	{"/version", false},
	{"/", false},
}

// creates a new probe client
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// fetches path and decodes the flat JSON document it returns
func (c *Client) Get(ctx context.Context, path string) (check Check) {
	check.Path = path
	start := time.Now()

	defer func() {
		check.Latency = time.Since(start)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path, nil)
	if err != nil {
		check.Err = fmt.Errorf("failed to create request: %w", err)
		return check
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		check.Err = fmt.Errorf("request failed: %w", err)
		return check
	}
	defer resp.Body.Close() //nolint:errcheck

	check.Status = resp.StatusCode

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		check.Err = fmt.Errorf("failed to read response: %w", err)
		return check
	}

	if resp.StatusCode != http.StatusOK {
		check.Err = fmt.Errorf("unexpected status %d", resp.StatusCode)
		return check
	}

	if err := json.Unmarshal(body, &check.Body); err != nil {
		check.Err = fmt.Errorf("failed to decode response: %w", err)
	}

	return check
}

// probes every route and returns the collected report
func (c *Client) Run(ctx context.Context) *Report {
	report := &Report{Endpoint: c.endpoint}

	for _, route := range probedRoutes {
		check := c.Get(ctx, route.path)
		check.Required = route.required
		report.Checks = append(report.Checks, check)
	}

	return report
}

// reports whether every required check passed with {"status":"ok"}
func (r *Report) Healthy() bool {
	for _, check := range r.Checks {
		if !check.Required {
			continue
		}

		if check.Err != nil || check.Body["status"] != "ok" {
			return false
		}
	}

	return true
}

// returns the version reported by /version, empty if unavailable
func (r *Report) Version() string {
	for _, check := range r.Checks {
		if check.Path == "/version" && check.Err == nil {
			return check.Body["version"]
		}
	}

	return ""
}
