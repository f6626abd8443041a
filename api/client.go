// Package api is the bearer-authenticated client for the dashboard's
// resource endpoints. Every request carries the session's current token;
// a 401 from any call means the server no longer trusts that token, and the
// configured unauthorized hook (by default, nothing) is invoked so the
// owner can force a logout.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/splitwing/splitwing/core"
)

// DefaultTimeout bounds a single resource request
const DefaultTimeout = 15 * time.Second

// TokenSource supplies the bearer token to attach to requests.
// *service.SessionService satisfies it.
type TokenSource interface {
	Token() string
}

// Client talks to the dashboard's resource API
type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func(ctx context.Context)
}

// NewClient creates a resource client against baseURL, reading the bearer
// token from tokens on every request
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		tokens:  tokens,
	}
}

// WithHTTPClient replaces the underlying HTTP client
func (c *Client) WithHTTPClient(client *http.Client) *Client {
	c.http = client
	return c
}

// OnUnauthorized sets the hook invoked when the server answers 401.
// Wiring it to the session service's Logout gives the usual
// stale-token-forces-reauthentication behavior.
func (c *Client) OnUnauthorized(hook func(ctx context.Context)) *Client {
	c.onUnauthorized = hook
	return c
}

// do issues a request with the bearer token attached and decodes the JSON
// response into out when out is non-nil
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return core.ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
