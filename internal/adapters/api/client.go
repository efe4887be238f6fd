// Package api is the HTTP client for the remote RSVP REST API.
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
	"sync"
	"time"

	"rsvpportal/internal/domain"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:5000/api"

const sessionExpiredMessage = "Your session has expired. Please login again."

// UnauthorizedHook is called when the remote API rejects the session attached to ctx.
type UnauthorizedHook func(ctx context.Context, s domain.Session)

// Options configures a Client.
type Options struct {
	BaseURL string
	// Timeout bounds each request. Zero leaves requests bounded only by their context.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client performs JSON requests against the remote API. Authenticated calls
// carry the bearer token of the session stored in the request context.
type Client struct {
	baseURL string
	http    *http.Client

	mu             sync.RWMutex
	onUnauthorized UnauthorizedHook
}

// New returns a Client for opts.
func New(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{baseURL: base, http: hc}
}

// OnUnauthorized installs the hook fired after a 401 on an authenticated call.
func (c *Client) OnUnauthorized(fn UnauthorizedHook) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = fn
}

type request struct {
	method string
	path   string
	body   any
	// public requests never carry the session bearer token.
	public bool
	// fallback is the error message used when the error body cannot be decoded.
	fallback string
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, request{method: http.MethodGet, path: path}, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	return c.do(ctx, request{method: method, path: path, body: body}, out)
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	session, hasSession := domain.SessionFromContext(ctx)
	authed := !r.public && hasSession && session.AccessToken != ""
	if authed {
		req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %w", r.method, r.path, domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeError(resp, r.fallback)
		if resp.StatusCode == http.StatusUnauthorized && authed {
			apiErr.Message = sessionExpiredMessage
			c.fireUnauthorized(ctx, session)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to decode %s %s response: %w: %w", r.method, r.path, domain.ErrUpstream, err)
	}
	return nil
}

func (c *Client) fireUnauthorized(ctx context.Context, s domain.Session) {
	c.mu.RLock()
	hook := c.onUnauthorized
	c.mu.RUnlock()
	if hook != nil {
		hook(ctx, s)
	}
}

func decodeError(resp *http.Response, fallback string) *domain.APIError {
	if fallback == "" {
		fallback = "Unknown error"
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		body = map[string]any{"error": fallback}
	}
	msg, _ := body["error"].(string)
	if msg == "" {
		msg = fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
	}
	return domain.NewAPIError(resp.StatusCode, msg, body)
}
