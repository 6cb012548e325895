package apiclient

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

	"go.uber.org/zap"

	"github.com/noah-isme/scholarship-portal-api/pkg/middleware/requestid"
)

// Recorder receives one observation per backend call.
type Recorder interface {
	ObserveBackendCall(operation, method string, status int, duration time.Duration)
}

// Config configures a Client.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	HTTP     *http.Client
	Logger   *zap.Logger
	Recorder Recorder
}

// Client is the single point of HTTP communication with the scholarship
// backend.
type Client struct {
	baseURL  string
	http     *http.Client
	logger   *zap.Logger
	recorder Recorder
}

// Request describes one logical backend operation.
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	Body      any
	Token     string
	Operation string
}

// Result is the normalized backend answer.
type Result struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data,omitempty"`
	Message    string          `json:"message,omitempty"`
	StatusCode int             `json:"-"`
}

// New constructs a Client. A zero Timeout leaves requests bounded only by
// their context.
func New(cfg Config) *Client {
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     httpClient,
		logger:   logger,
		recorder: cfg.Recorder,
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs req and normalizes the response. HTTP error statuses are
// reported through Result; the returned error is reserved for request
// construction and transport failures.
func (c *Client) Do(ctx context.Context, req Request) (*Result, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	target := c.url(req.Path, req.Query)

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", operationName(req), err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", operationName(req), err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}
	if id := requestid.FromContext(ctx); id != "" {
		httpReq.Header.Set(requestid.Header, id)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.observe(req, method, 0, time.Since(start))
		c.logger.Warn("backend request failed",
			zap.String("operation", operationName(req)),
			zap.String("method", method),
			zap.String("path", req.Path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%s: %w", operationName(req), err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	c.observe(req, method, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", operationName(req), err)
	}

	result := Normalize(resp.StatusCode, raw)
	if !result.Success {
		c.logger.Debug("backend reported failure",
			zap.String("operation", operationName(req)),
			zap.Int("status", resp.StatusCode),
			zap.String("message", result.Message),
		)
	}
	return result, nil
}

// Get is shorthand for a GET request.
func (c *Client) Get(ctx context.Context, path, token string, query url.Values) (*Result, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Token: token, Query: query})
}

// Post is shorthand for a POST request.
func (c *Client) Post(ctx context.Context, path, token string, body any) (*Result, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Token: token, Body: body})
}

// Put is shorthand for a PUT request.
func (c *Client) Put(ctx context.Context, path, token string, body any) (*Result, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Token: token, Body: body})
}

// Patch is shorthand for a PATCH request.
func (c *Client) Patch(ctx context.Context, path, token string, body any) (*Result, error) {
	return c.Do(ctx, Request{Method: http.MethodPatch, Path: path, Token: token, Body: body})
}

// Delete is shorthand for a DELETE request.
func (c *Client) Delete(ctx context.Context, path, token string) (*Result, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path, Token: token})
}

func (c *Client) url(path string, query url.Values) string {
	target := c.baseURL
	if path != "" {
		if !strings.HasPrefix(path, "/") {
			target += "/"
		}
		target += path
	}
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}

func (c *Client) observe(req Request, method string, status int, d time.Duration) {
	if c.recorder == nil {
		return
	}
	c.recorder.ObserveBackendCall(operationName(req), method, status, d)
}

func operationName(req Request) string {
	if req.Operation != "" {
		return req.Operation
	}
	return req.Path
}
