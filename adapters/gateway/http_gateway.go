// Package gateway talks to the remote authority that issues bearer tokens.
// It only carries requests and maps responses; applying results to the
// session is the caller's job.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/splitwing/splitwing/core"
	"github.com/splitwing/splitwing/ports"
)

// DefaultTimeout bounds a single credential request
const DefaultTimeout = 15 * time.Second

// HTTPGateway implements ports.Gateway over the authority's HTTP API
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

// NewHTTPGateway creates a gateway against the authority at baseURL
func NewHTTPGateway(baseURL string) *HTTPGateway {
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: DefaultTimeout},
	}
}

// WithHTTPClient replaces the underlying HTTP client
func (g *HTTPGateway) WithHTTPClient(client *http.Client) *HTTPGateway {
	g.client = client
	return g
}

var _ ports.Gateway = (*HTTPGateway)(nil)

// Login exchanges credentials for a bearer token. The authority expects a
// form-encoded body and answers {"access_token": "..."} on success.
// A 401-class rejection maps to core.ErrInvalidCredentials without saying
// which field was wrong.
func (g *HTTPGateway) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", core.ErrInvalidCredentials
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", fmt.Errorf("login failed: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}

	return body.AccessToken, nil
}

// Register creates an account. It never returns a token: a fresh account
// still has to log in explicitly.
func (g *HTTPGateway) Register(ctx context.Context, username, password string) error {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return fmt.Errorf("failed to encode register request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/auth/register", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build register request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusConflict:
		return core.ErrUsernameTaken
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("register failed: unexpected status %d", resp.StatusCode)
	}

	return nil
}
