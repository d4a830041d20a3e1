// Package api is the client for the bettero expense API. It owns the
// normalization contract: snake/camel key conversion at the boundary,
// envelope flattening, table-driven endpoint selection, and bearer-token
// injection from an explicit session.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bettero/internal/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

var (
	// ErrUnauthorized indicates the server rejected the bearer token.
	ErrUnauthorized = errors.New("api: unauthorized")
	// ErrNotFound indicates the resource does not exist, e.g. an unknown
	// stock symbol.
	ErrNotFound = errors.New("api: not found")
)

// StatusError carries a non-2xx response with its structured detail body.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: status %d: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("api: status %d", e.Code)
}

// Client issues authenticated requests against one deployment of the
// expense API.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
	logger  *zap.Logger
	cache   *responseCache
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the diagnostic sink for failed requests.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithCache enables the (endpoint, params)-keyed response cache with
// in-flight de-duplication.
func WithCache(backend CacheBackend, maxAge time.Duration) Option {
	return func(c *Client) { c.cache = newResponseCache(backend, maxAge) }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New creates a client for the given base URL. The session supplies the
// bearer token; a session without tokens is fine, the server answers 401
// and the caller handles it.
func New(baseURL string, sess *session.Session, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{},
		session: sess,
		logger:  zap.NewNop(),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EnsureFresh decodes the access token's expiry locally and refreshes it
// through /login/refresh if needed. Call before protected work; a refresh
// failure means the user must log in again.
func (c *Client) EnsureFresh(ctx context.Context) error {
	return c.session.EnsureFresh(ctx, c.refreshAccess)
}

// refreshAccess exchanges the refresh token for a new access token.
func (c *Client) refreshAccess(ctx context.Context, refreshToken string) (string, error) {
	body, err := c.fetch(ctx, http.MethodPost, "/login/refresh", nil, map[string]string{
		"refresh": refreshToken,
	})
	if err != nil {
		return "", err
	}
	var resp struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("api: decoding refresh response: %w", err)
	}
	if resp.Access == "" {
		return "", errors.New("api: refresh response carried no access token")
	}
	return resp.Access, nil
}

// get performs a GET through the response cache when one is configured.
// The returned body is camelized.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if c.cache == nil {
		return c.fetch(ctx, http.MethodGet, path, params, nil)
	}
	return c.cache.through(cacheKey(path, params), func() ([]byte, error) {
		return c.fetch(ctx, http.MethodGet, path, params, nil)
	})
}

// mutate performs a state-changing request and invalidates cached responses
// under the endpoint's prefix.
func (c *Client) mutate(ctx context.Context, method, path string, body any) ([]byte, error) {
	data, err := c.fetch(ctx, method, path, nil, body)
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		prefix := "/" + strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)[0]
		c.cache.invalidate(prefix)
	}
	return data, nil
}

// fetch issues one request. Outgoing bodies are decamelized, incoming
// bodies camelized; the bearer token is attached when the session holds
// one. Every request carries a correlation ID for the diagnostic log.
func (c *Client) fetch(ctx context.Context, method, path string, params url.Values, body any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := encodeBody(body)
		if err != nil {
			return nil, fmt.Errorf("api: encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("api: creating request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("api: reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("request rejected",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return nil, ErrUnauthorized
		case http.StatusNotFound:
			return nil, ErrNotFound
		}
		return nil, &StatusError{Code: resp.StatusCode, Detail: errorDetail(raw)}
	}

	if len(raw) == 0 {
		return nil, nil
	}
	camelized, err := camelizeBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("api: decoding response: %w", err)
	}
	return camelized, nil
}

// errorDetail extracts the detail field of a structured error body.
func errorDetail(raw []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Detail
}

func cacheKey(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}
