// Package rest implements the storage repositories over the remote REST
// collections. Every call is one HTTP request; there is no retry, caching or
// offline queue. Failures carry the upstream status as a GatewayError so
// callers can map them to their own responses.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jobtrack/config"
)

// Client is the shared HTTP plumbing for the per-collection gateways.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// NewClient builds a gateway client from the remote store configuration.
// The request timeout keeps a hung upstream from pinning a submit forever.
func NewClient(cfg config.RemoteConfig) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid remote store base URL %q", cfg.BaseURL)
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// doJSON issues one request and decodes the response into out (when non-nil).
// Non-2xx responses become a *GatewayError wrapping the matching storage
// sentinel, so errors.Is(err, storage.ErrNotFound) works at the call site.
func (c *Client) doJSON(ctx context.Context, method, path string, reqBody, out any) error {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path

	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("remote store %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newGatewayError(resp)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s %s: %w", method, path, err)
	}
	return nil
}
