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
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/laixingyu123/ay32-client-go/internal/apierrors"
)

// Version is the client library version sent in the User-Agent header.
const Version = "1.1.0"

// Default transport settings, used when the corresponding Config field
// is left at its zero value.
const (
	DefaultTimeout    = 60 * time.Second
	DefaultMaxRetries = 2
	DefaultRetryDelay = time.Second
)

const defaultUserAgent = "ay32-client-go/" + Version

// maxErrorBodyBytes caps how much of a non-envelope body is carried into
// an error message.
const maxErrorBodyBytes = 512

// Config configures the API client. Zero values select the package
// defaults; a negative Timeout, MaxRetries or RetryDelay explicitly
// disables the corresponding behavior.
type Config struct {
	// BaseURL is the backend root, e.g. "http://localhost:8080". Required.
	BaseURL string
	// APIKey is sent via the X-API-Key header when non-empty.
	APIKey string
	// Timeout bounds each individual attempt, not the call as a whole.
	Timeout time.Duration
	// MaxRetries is the number of additional attempts after the first.
	MaxRetries int
	// RetryDelay is the constant pause between attempts.
	RetryDelay time.Duration
	// HTTPClient overrides the default client. Its own Timeout is
	// respected as-is.
	HTTPClient *http.Client
	// Logger receives per-attempt request, response and retry events.
	Logger *zerolog.Logger
	// Limiter, when set, paces outgoing attempts.
	Limiter *rate.Limiter
	// RequestInterceptors run in order before each attempt is sent.
	RequestInterceptors []RequestInterceptor
	// ResponseInterceptors run in order after a response is received.
	ResponseInterceptors []ResponseInterceptor
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}

// Client is the HTTP transport shared by all operations. It is immutable
// after creation and safe for concurrent use.
type Client struct {
	baseURL          string
	apiKey           string
	httpClient       *http.Client
	maxRetries       int
	retryDelay       time.Duration
	logger           zerolog.Logger
	limiter          *rate.Limiter
	reqInterceptors  []RequestInterceptor
	respInterceptors []ResponseInterceptor
	userAgent        string
}

// NewClient creates a new API client from cfg.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}

	timeout := cfg.Timeout
	switch {
	case timeout == 0:
		timeout = DefaultTimeout
	case timeout < 0:
		timeout = 0
	}

	maxRetries := cfg.MaxRetries
	switch {
	case maxRetries == 0:
		maxRetries = DefaultMaxRetries
	case maxRetries < 0:
		maxRetries = 0
	}

	retryDelay := cfg.RetryDelay
	switch {
	case retryDelay == 0:
		retryDelay = DefaultRetryDelay
	case retryDelay < 0:
		retryDelay = 0
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:           cfg.APIKey,
		httpClient:       httpClient,
		maxRetries:       maxRetries,
		retryDelay:       retryDelay,
		logger:           logger,
		limiter:          cfg.Limiter,
		reqInterceptors:  cfg.RequestInterceptors,
		respInterceptors: cfg.ResponseInterceptors,
		userAgent:        userAgent,
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Do sends one API call: it marshals body (when non-nil) as JSON, posts
// it to path, and decodes the response envelope into out (when non-nil).
//
// Attempts that fail without the server producing a response are retried
// up to MaxRetries times with a constant RetryDelay between them. Any
// received response, including one with an HTTP error status, is decoded
// immediately and never retried. The request body is marshalled once and
// replayed verbatim on every attempt.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	requestID := uuid.NewString()

	var lastErr error
	attempts := 0
	for attempt := 0; ; attempt++ {
		attempts = attempt + 1

		resp, err := c.dispatch(ctx, method, path, requestID, payload, attempt)
		if err == nil {
			return c.decode(resp, out)
		}
		lastErr = err

		if !c.shouldRetry(ctx, err, attempt) {
			break
		}
		c.logRetry(method, path, requestID, attempt)
		if err := c.wait(ctx); err != nil {
			lastErr = err
			break
		}
	}

	if isNoResponse(lastErr) {
		return &apierrors.NetworkError{Err: lastErr, URL: c.baseURL + path, Attempts: attempts}
	}
	return lastErr
}

// dispatch performs a single attempt. A non-nil response means the server
// answered; every error return means no usable response was received.
func (c *Client) dispatch(ctx context.Context, method, path, requestID string, payload []byte, attempt int) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	for _, ic := range c.reqInterceptors {
		if err := ic(ctx, req); err != nil {
			return nil, &apierrors.InterceptorError{Stage: "request", Err: err}
		}
	}

	c.logRequest(req, requestID, attempt, len(payload))
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logFailure(method, path, requestID, attempt, err)
		return nil, err
	}

	for _, ic := range c.respInterceptors {
		if err := ic(ctx, req, resp); err != nil {
			resp.Body.Close()
			return nil, &apierrors.InterceptorError{Stage: "response", Err: err}
		}
	}

	c.logResponse(req, resp, requestID, attempt, time.Since(start))
	return resp, nil
}

// decode normalizes a received response. Envelopes with errCode zero
// succeed and have their data decoded into out; everything else becomes
// an *apierrors.APIError.
func (c *Client) decode(resp *http.Response, out any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if len(bytes.TrimSpace(body)) == 0 && resp.StatusCode < 400 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &apierrors.APIError{
			Code:       -1,
			HTTPStatus: resp.StatusCode,
			Message:    fallbackMessage(body, resp.StatusCode),
		}
	}

	if env.ErrCode != 0 {
		msg := env.ErrMsg
		if msg == "" {
			msg = apierrors.UnknownMessage
		}
		return &apierrors.APIError{Code: env.ErrCode, HTTPStatus: resp.StatusCode, Message: msg}
	}

	if resp.StatusCode >= 400 {
		// An HTTP error status whose body decoded without an errCode is
		// still a failure; the body carried no usable envelope.
		return &apierrors.APIError{
			Code:       -1,
			HTTPStatus: resp.StatusCode,
			Message:    fallbackMessage(body, resp.StatusCode),
		}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

// fallbackMessage extracts a human-readable error description from a
// non-envelope response.
func fallbackMessage(body []byte, status int) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBodyBytes {
		s = s[:maxErrorBodyBytes]
	}
	if s != "" {
		return s
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return apierrors.UnknownMessage
}
