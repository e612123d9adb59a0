// Package marketdex is a typed Go client for the marketdex HTTP API.
package marketdex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound signals a missing resource (unknown market slug).
var ErrNotFound = errors.New("marketdex: not found")

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("marketdex: %s (%d): %s", e.Code, e.Status, e.Message)
}

// Client talks to a marketdex server.
type Client struct {
	baseURL string
	httpc   *http.Client
	apiKey  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithAPIKey sets a Bearer token for private deployments.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// New creates a client for the given base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("marketdex: base URL is required")
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Market fetches one market by slug.
func (c *Client) Market(ctx context.Context, slug string) (*Market, error) {
	var m Market
	if err := c.get(ctx, "/api/markets/"+url.PathEscape(slug), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// States fetches active-market counts per state.
func (c *Client) States(ctx context.Context) ([]State, error) {
	var resp struct {
		Data []State `json:"data"`
	}
	if err := c.get(ctx, "/api/states", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Search starts a fluent search query.
func (c *Client) Search() *SearchBuilder {
	return &SearchBuilder{client: c, params: url.Values{}}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("marketdex: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("marketdex: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Status: resp.StatusCode}
		var body struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			apiErr.Code = body.Code
			apiErr.Message = body.Message
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("marketdex: decode response: %w", err)
	}
	return nil
}
