// Package transport implements the shared HTTP conduit every domain
// operation dispatches through: base-path resolution, default headers,
// send-time bearer injection, the 401 auth guard, and rate-limit snapshot
// capture. No retries, no caching, no timeout beyond the injected client's
// own.
package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/google/uuid"

	"github.com/frauddash/go-fraudclient/core"
	"github.com/frauddash/go-fraudclient/ratelimit"
)

const KindREST = "rest"

const defaultClientTimeout = 30 * time.Second
const defaultResponseBodyLimit int64 = 32 << 20 // report exports can be large

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	BaseURL              string
	UserAgent            string
	HTTPClient           HTTPDoer
	Credentials          core.CredentialStore
	Logger               core.Logger
	MaxResponseBodyBytes int64

	// RequestID mints the X-Request-ID header value; defaults to uuid.
	RequestID func() string
}

type Client struct {
	httpClient  HTTPDoer
	baseURL     string
	userAgent   string
	credentials core.CredentialStore
	logger      core.Logger
	maxBody     int64
	requestID   func() string

	mu            sync.Mutex
	lastRateLimit ratelimit.Snapshot
}

func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultClientTimeout}
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = core.DefaultBasePath
	}
	maxBody := cfg.MaxResponseBodyBytes
	if maxBody <= 0 {
		maxBody = defaultResponseBodyLimit
	}
	requestID := cfg.RequestID
	if requestID == nil {
		requestID = func() string { return uuid.NewString() }
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		userAgent:   strings.TrimSpace(cfg.UserAgent),
		credentials: cfg.Credentials,
		logger:      glog.Ensure(cfg.Logger),
		maxBody:     maxBody,
		requestID:   requestID,
	}
}

// LastRateLimit returns the rate-limit snapshot extracted from the most
// recent response that carried one (or the documented defaults before any
// call completes).
func (c *Client) LastRateLimit() ratelimit.Snapshot {
	if c == nil {
		return ratelimit.DefaultSnapshot()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastRateLimit == (ratelimit.Snapshot{}) {
		return ratelimit.DefaultSnapshot()
	}
	return c.lastRateLimit
}

func (*Client) Kind() string {
	return KindREST
}

// Do dispatches one request. The credential slot is read here, immediately
// before the wire write, so a token rotated or cleared after the caller
// built the request is always the one sent. Any HTTP status comes back as a
// response; Do errors only when the exchange itself failed.
func (c *Client) Do(ctx context.Context, req core.TransportRequest) (core.TransportResponse, error) {
	if c == nil || c.httpClient == nil {
		return core.TransportResponse{}, core.InternalError(
			"transport: client requires an http client",
			map[string]any{"adapter": KindREST},
		)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	method := strings.TrimSpace(strings.ToUpper(req.Method))
	if method == "" {
		method = http.MethodGet
	}
	requestURL, err := c.resolveURL(req)
	if err != nil {
		return core.TransportResponse{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, requestURL, bytes.NewReader(req.Body))
	if err != nil {
		return core.TransportResponse{}, core.BadInputError(
			"transport: create http request",
			map[string]any{"adapter": KindREST, "method": method, "url": requestURL, "error": err.Error()},
		)
	}

	contentType := strings.TrimSpace(req.ContentType)
	if contentType == "" {
		contentType = core.DefaultContentType
	}
	httpReq.Header.Set("Content-Type", contentType)
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}
	httpReq.Header.Set("X-Request-ID", c.requestID())
	for key, value := range req.Headers {
		if strings.TrimSpace(key) == "" {
			continue
		}
		httpReq.Header.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	c.injectCredential(ctx, httpReq)

	startedAt := time.Now().UTC()
	httpRes, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.observe(ctx, method, requestURL, 0, startedAt, err)
		return core.TransportResponse{}, core.NetworkError(err, map[string]any{
			"adapter": KindREST,
			"method":  method,
			"url":     requestURL,
		})
	}
	defer httpRes.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpRes.Body, c.maxBody+1))
	if err != nil {
		c.observe(ctx, method, requestURL, httpRes.StatusCode, startedAt, err)
		return core.TransportResponse{}, core.NetworkError(err, map[string]any{
			"adapter":     KindREST,
			"status_code": httpRes.StatusCode,
		})
	}
	if int64(len(body)) > c.maxBody {
		return core.TransportResponse{}, core.InternalError(
			"transport: response body exceeds limit",
			map[string]any{"adapter": KindREST, "status_code": httpRes.StatusCode, "response_limit_b": c.maxBody},
		)
	}

	headers := flattenHeaders(httpRes.Header)
	c.recordRateLimit(headers)

	c.observe(ctx, method, requestURL, httpRes.StatusCode, startedAt, nil)
	return core.TransportResponse{
		StatusCode: httpRes.StatusCode,
		Headers:    headers,
		Body:       body,
		Metadata: map[string]any{
			"duration_ms": time.Since(startedAt).Milliseconds(),
			"kind":        KindREST,
		},
	}, nil
}

// injectCredential attaches the bearer header when a credential exists. A
// read failure sends the request unauthenticated rather than failing the
// call; the backend decides what an anonymous request may do.
func (c *Client) injectCredential(ctx context.Context, httpReq *http.Request) {
	if c.credentials == nil {
		return
	}
	token, present, err := c.credentials.Get(ctx)
	if err != nil {
		c.logger.Warn("credential read failed, sending unauthenticated", "error", err.Error())
		return
	}
	if present && token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) resolveURL(req core.TransportRequest) (string, error) {
	trimmedPath := strings.TrimSpace(req.Path)
	joined := c.baseURL
	if trimmedPath != "" {
		joined = c.baseURL + "/" + strings.TrimLeft(trimmedPath, "/")
	}
	parsed, err := url.Parse(joined)
	if err != nil {
		return "", core.BadInputError(
			"transport: invalid request url",
			map[string]any{"adapter": KindREST, "url": joined, "error": err.Error()},
		)
	}

	query := parsed.Query()
	for key, value := range req.Query {
		if strings.TrimSpace(key) == "" || strings.TrimSpace(value) == "" {
			continue
		}
		query.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

func (c *Client) recordRateLimit(headers map[string]string) {
	snapshot := ratelimit.FromHeaders(headers)
	c.mu.Lock()
	c.lastRateLimit = snapshot
	c.mu.Unlock()
}

func (c *Client) observe(
	ctx context.Context,
	method string,
	requestURL string,
	status int,
	startedAt time.Time,
	err error,
) {
	logger := c.logger
	if logger == nil {
		return
	}
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}
	args := []any{
		"method", method,
		"url", requestURL,
		"status_code", status,
		"duration_ms", time.Since(startedAt).Milliseconds(),
	}
	if err != nil {
		args = append(args, "error", err.Error())
		logger.Error("request failed", args...)
		return
	}
	logger.Debug("request completed", args...)
}

func flattenHeaders(headers http.Header) map[string]string {
	if len(headers) == 0 {
		return map[string]string{}
	}
	flat := make(map[string]string, len(headers))
	for key, values := range headers {
		if len(values) == 0 {
			flat[key] = ""
			continue
		}
		flat[key] = strings.Join(values, ",")
	}
	return flat
}

var _ core.TransportAdapter = (*Client)(nil)
