// Package apiclient is the single chokepoint for every outbound request to
// the association backend. It resolves URLs against a configurable base,
// attaches the bearer token, and normalizes every failure into *Error so
// callers never need to distinguish transport errors from HTTP errors
// structurally.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

const DefaultTimeout = 30 * time.Second

// Error is the normalized failure shape of every request. Status 0 means the
// request never reached the server or no response was received.
type Error struct {
	Message string              `json:"message"`
	Status  int                 `json:"status"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// TokenSource supplies the current bearer token; an empty string means no
// Authorization header is attached.
type TokenSource interface {
	Token() string
}

// TokenHolder is a process-wide mutable token slot. Updates are visible to
// the next request issued after the update completes.
type TokenHolder struct {
	mu    sync.RWMutex
	token string
}

func (h *TokenHolder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *TokenHolder) Set(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

func (h *TokenHolder) Clear() {
	h.Set("")
}

// Client performs JSON requests against a fixed base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// New builds a client. The timeout is enforced on every request; zero falls
// back to DefaultTimeout. tokens may be nil for an unauthenticated client.
func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// URL joins the base URL and an endpoint path, normalizing duplicate slashes.
func (c *Client) URL(endpoint string) string {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return c.baseURL + endpoint
}

func (c *Client) Get(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *Client) Post(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out)
}

func (c *Client) Put(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPut, endpoint, body, out)
}

func (c *Client) Patch(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPatch, endpoint, body, out)
}

func (c *Client) Delete(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, out)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: fmt.Sprintf("encode request body: %v", err), Status: 0}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(endpoint), reader)
	if err != nil {
		return &Error{Message: err.Error(), Status: 0}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// DNS failure, connection refused, timeout: same shape, status 0.
		return &Error{Message: err.Error(), Status: 0}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Message: err.Error(), Status: 0}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		// Empty success body resolves to the zero value, not a parse error.
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Message: fmt.Sprintf("decode response body: %v", err), Status: resp.StatusCode}
	}
	return nil
}

// newAPIError extracts {message, errors} from an error body, falling back to
// "HTTP <status>: <statusText>" when the body is not parseable JSON.
func newAPIError(resp *http.Response) *Error {
	apiErr := &Error{Status: resp.StatusCode}

	var body struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	data, readErr := io.ReadAll(resp.Body)
	if readErr == nil && json.Unmarshal(data, &body) == nil && body.Message != "" {
		apiErr.Message = body.Message
		apiErr.Errors = body.Errors
		return apiErr
	}

	apiErr.Message = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	return apiErr
}

// IsStatus reports whether err is an *Error with the given HTTP status.
func IsStatus(err error, status int) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Status == status
}
