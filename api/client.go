package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenSource supplies the current bearer token for authenticated requests.
// An empty return means no credential is available; the request is sent
// without an Authorization header and the backend decides.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-credential [TokenSource], useful for tools and tests.
type StaticToken string

// Token implements [TokenSource].
func (t StaticToken) Token() string { return string(t) }

// Config controls adapter construction.
type Config struct {
	// BaseURL is prefixed to every request. Empty means requests are issued
	// as bare /api-prefixed paths, intended for a development-time reverse
	// proxy sitting in front of the process. The default http.Client cannot
	// resolve a host-less URL, so an empty BaseURL only works together with
	// a custom HTTPClient whose transport supplies the host; ordinary
	// consumers must set a base URL.
	BaseURL string
	// Timeout bounds each request when no custom HTTPClient is supplied.
	Timeout time.Duration
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// HTTPClient replaces the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

const defaultUserAgent = "echoaway-go"

// Validate rejects malformed adapter configuration. An empty BaseURL is
// accepted (reverse-proxy mode); a non-empty one must be http(s).
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return nil
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("invalid base URL %q: must start with http:// or https://", c.BaseURL)
	}
	return nil
}

// Client is the EchoAway REST adapter. It is safe for concurrent use.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	tokens    TokenSource
}

// New builds a [Client]. tokens may be nil when only public endpoints are
// called.
func New(cfg Config, tokens TokenSource) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: userAgent,
		http:      httpClient,
		tokens:    tokens,
	}, nil
}

// BaseURL returns the configured base URL, empty in reverse-proxy mode.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) url(endpoint string) string {
	return c.baseURL + "/api" + endpoint
}

// do issues one request. Sequence: encode body, attach headers (and bearer
// when withAuth), send, classify outcome. No retries.
func (c *Client) do(ctx context.Context, method, endpoint string, withAuth bool, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(endpoint), reader)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withAuth && c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp.StatusCode, payload)
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, endpoint, err)
	}
	return nil
}
