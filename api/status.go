package api

import (
	"context"
	"net/http"
	"time"
)

// Status probes the backend liveness endpoint. Any 2xx is healthy.
func (c *Client) Status(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/status", false, nil, nil)
}

// ConnectionReport is the outcome of [Client.TestConnection].
type ConnectionReport struct {
	Success      bool
	URL          string
	ResponseTime time.Duration
	Err          error
}

// TestConnection measures one round-trip to the liveness endpoint. It never
// returns an error; failures are carried inside the report.
func (c *Client) TestConnection(ctx context.Context) ConnectionReport {
	start := time.Now()
	err := c.Status(ctx)
	return ConnectionReport{
		Success:      err == nil,
		URL:          c.baseURL,
		ResponseTime: time.Since(start),
		Err:          err,
	}
}
