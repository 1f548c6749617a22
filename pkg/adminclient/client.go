package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blogadmin/console/pkg/logging"
	"github.com/blogadmin/console/pkg/util"
)

// DefaultTimeout bounds every request unless WithTimeout says otherwise.
const DefaultTimeout = 30 * time.Second

// APIPrefix is prepended to every resource path.
const APIPrefix = "/api/v1"

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// maxErrorMessage caps non-envelope error bodies copied into StatusError.
const maxErrorMessage = 512

// Client is an HTTP client for the blog backend's admin API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string // optional bearer token
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithToken sets the bearer token sent on every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient replaces the underlying HTTP client. The timeout already
// configured on hc is kept.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a new admin API client rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		log: logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Categories returns the category client.
func (c *Client) Categories() *Resource[Category] {
	return NewResource[Category](c, "category")
}

// Tags returns the tag client.
func (c *Client) Tags() *Resource[Tag] {
	return NewResource[Tag](c, "tag")
}

// Articles returns the article client.
func (c *Client) Articles() *Resource[Article] {
	return NewResource[Article](c, "article")
}

// Roles returns the role client.
func (c *Client) Roles() *Resource[Role] {
	return NewResource[Role](c, "role")
}

// Users returns the account client.
func (c *Client) Users() *Users {
	return &Users{Resource: NewResource[User](c, "user")}
}

// Endpoints returns the API endpoint client.
func (c *Client) Endpoints() *Endpoints {
	return &Endpoints{Resource: NewResource[Endpoint](c, "api")}
}

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// call performs one request and decodes the envelope.
func call[T any](ctx context.Context, c *Client, method, path string, body any) (*Response[T], error) {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.parseError(method, path, resp)
	}

	var out Response[T]
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return &out, nil
}

// HTTP helpers

func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case json.RawMessage:
		// sent byte for byte
		reader = bytes.NewReader(b)
	default:
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"requestId", requestID,
			"error", err,
		)
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	c.log.Debug("request",
		"method", req.Method,
		"path", req.URL.Path,
		"requestId", requestID,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	return resp, nil
}

func (c *Client) parseError(method, path string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	serr := &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
	var env Response[json.RawMessage]
	if json.Unmarshal(body, &env) == nil && env.Message != "" {
		serr.Message = env.Message
	} else {
		serr.Message = util.TruncateBody(strings.TrimSpace(string(body)), maxErrorMessage)
	}
	return serr
}
