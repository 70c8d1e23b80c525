package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/multi-converter/internal/logging"
	"github.com/ytget/multi-converter/internal/model"
)

// Endpoint paths outside the per-category conversion routes
const (
	HealthPath = "/health"
	UnitsPath  = "/api/units"
	InfoPath   = "/api/info"
)

// RequestIDHeader carries the per-call correlation id
const RequestIDHeader = "X-Request-ID"

// ErrDecode is returned when a response body is not the expected JSON
var ErrDecode = errors.New("decode response")

// errNullBody is returned when a reply decodes to JSON null
var errNullBody = fmt.Errorf("%w: null body", ErrDecode)

// ErrStatus is returned by catalog and info calls on a non-2xx reply
var ErrStatus = errors.New("unexpected status")

// Client talks to the conversion service over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds every call; zero disables the bound
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger used for request logging
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

var _ Backend = (*Client)(nil)

// NewClient creates a client for the service rooted at baseURL
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service root the client was created with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health calls GET /health
func (c *Client) Health(ctx context.Context) (*model.HealthStatus, error) {
	_, data, err := c.do(ctx, http.MethodGet, HealthPath, nil)
	if err != nil {
		return nil, err
	}

	var out *model.HealthStatus
	if err := decode(data, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, errNullBody
	}
	return out, nil
}

// Convert posts req to endpoint. Both 2xx and 4xx replies carry the same JSON
// shape, so the status code is not inspected.
func (c *Client) Convert(ctx context.Context, endpoint string, req model.ConversionRequest) (*model.ConversionResponse, error) {
	_, data, err := c.do(ctx, http.MethodPost, endpoint, req)
	if err != nil {
		return nil, err
	}

	var out *model.ConversionResponse
	if err := decode(data, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, errNullBody
	}
	return out, nil
}

// Units fetches GET /api/units
func (c *Client) Units(ctx context.Context) (model.UnitCatalog, error) {
	status, data, err := c.do(ctx, http.MethodGet, UnitsPath, nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, fmt.Errorf("%w: units: %d", ErrStatus, status)
	}

	var payload map[string][]string
	if err := decode(data, &payload); err != nil {
		return nil, err
	}
	return model.UnitCatalogFromPayload(payload), nil
}

// Info fetches GET /api/info
func (c *Client) Info(ctx context.Context) (*model.AppInfo, error) {
	status, data, err := c.do(ctx, http.MethodGet, InfoPath, nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, fmt.Errorf("%w: info: %d", ErrStatus, status)
	}

	var out *model.AppInfo
	if err := decode(data, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, errNullBody
	}
	return out, nil
}

// do performs one request and returns the status and raw body
func (c *Client) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.LogError(c.logger, "http request failed", err,
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", requestID))
		return 0, nil, err
	}
	defer logging.SafeCloseWithLogging(resp.Body, c.logger, "http_response_body")

	data, err := io.ReadAll(resp.Body)

	logging.LogHTTPRequest(c.logger, method, path, resp.StatusCode,
		float64(time.Since(start).Microseconds())/1000,
		slog.String("request_id", requestID))

	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, data, nil
}

// decode unmarshals a JSON body into out
func decode(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
