// Package providers contains aggregate.Connector implementations for the
// external job feeds (Adzuna, Remotive, Arbeitnow, USAJobs, generic JSON) and
// the platform-internal sources (Postgres-backed postings, demo seed data).
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxErrorBodyBytes = 4096

// getJSON performs a GET request and decodes the JSON response into out.
// Non-2xx responses are returned as errors carrying a truncated body excerpt.
func getJSON(ctx context.Context, client *http.Client, req jsonRequest, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", req.Name, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", req.Name, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return fmt.Errorf("%s: API error (%d): %s", req.Name, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", req.Name, err)
	}
	return nil
}

// jsonRequest groups getJSON parameters to keep param count ≤3.
type jsonRequest struct {
	Name    string // connector name, used in error messages
	URL     string
	Headers map[string]string
}

func defaultedClient(c *http.Client) *http.Client {
	if c != nil {
		return c
	}
	return http.DefaultClient
}

// parseTimeAny tries the timestamp layouts the feeds are known to emit.
func parseTimeAny(value string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.999", "2006-01-02T15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	return time.Time{}
}
