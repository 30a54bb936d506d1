// Package api provides the authenticated HTTP client for the BetaHub
// REST API and the record types its endpoints return.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/motemen/go-loghttp"

	"github.com/betahubio/betahub-mcp/auth"
	"github.com/betahubio/betahub-mcp/config"
)

// RequestOptions controls a single API request.
type RequestOptions struct {
	Method string
	Body   any
	// Headers are merged over the default headers and may override them.
	Headers map[string]string
}

// Client performs authenticated requests against the BetaHub API.
type Client struct {
	cfg   *config.Config
	token string
	httpc *http.Client
}

// New returns a Client bound to the session's token.
func New(cfg *config.Config, session *auth.Session) *Client {
	return NewWithToken(cfg, session.Token)
}

// NewWithToken returns a Client bound to an explicit token, independent
// of any session. Used by tests and multi-identity setups.
func NewWithToken(cfg *config.Config, token string) *Client {
	return &Client{
		cfg:   cfg,
		token: token,
		httpc: &http.Client{Transport: loghttp.DefaultTransport},
	}
}

// Request performs one API call and decodes the JSON response into out
// (skipped when out is nil). Non-2xx responses and transport failures
// are both reported as *StatusError.
func (c *Client) Request(ctx context.Context, endpoint string, opts RequestOptions, out any) error {
	url := c.cfg.APIURL(endpoint)

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if opts.Body != nil {
		b, err := json.Marshal(opts.Body)
		if err != nil {
			return &StatusError{
				Status:   http.StatusInternalServerError,
				Endpoint: endpoint,
				Message:  "Network error: " + err.Error(),
			}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return &StatusError{
			Status:   http.StatusInternalServerError,
			Endpoint: endpoint,
			Message:  "Network error: " + err.Error(),
		}
	}

	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Authorization", auth.FormatAuthHeader(c.token))
	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &StatusError{
			Status:   http.StatusInternalServerError,
			Endpoint: endpoint,
			Message:  "Network error: " + err.Error(),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{
			Status:   resp.StatusCode,
			Endpoint: endpoint,
			Message:  "API request failed: " + resp.Status,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &StatusError{
			Status:   http.StatusInternalServerError,
			Endpoint: endpoint,
			Message:  "Network error: " + err.Error(),
		}
	}
	return nil
}

// Get performs an authenticated GET request.
func (c *Client) Get(ctx context.Context, endpoint string, out any) error {
	return c.Request(ctx, endpoint, RequestOptions{Method: http.MethodGet}, out)
}

// Post performs an authenticated POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body, out any) error {
	return c.Request(ctx, endpoint, RequestOptions{Method: http.MethodPost, Body: body}, out)
}
