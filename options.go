package ay32

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/laixingyu123/ay32-client-go/internal/api"
)

// RequestInterceptor runs before each attempt is dispatched. It may
// mutate the request in place; returning an error aborts the call.
type RequestInterceptor = api.RequestInterceptor

// ResponseInterceptor runs after a response is received, before the body
// is decoded. Returning an error aborts the call.
type ResponseInterceptor = api.ResponseInterceptor

// Defaults applied by New when no option overrides them.
const (
	// DefaultTimeout bounds each individual attempt.
	DefaultTimeout = api.DefaultTimeout
	// DefaultMaxRetries is the number of additional attempts after the first.
	DefaultMaxRetries = api.DefaultMaxRetries
	// DefaultRetryDelay is the constant pause between attempts.
	DefaultRetryDelay = api.DefaultRetryDelay
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	apiKey           string
	timeout          time.Duration
	maxRetries       int
	retryDelay       time.Duration
	httpClient       *http.Client
	logger           *zerolog.Logger
	limiter          *rate.Limiter
	reqInterceptors  []RequestInterceptor
	respInterceptors []ResponseInterceptor
	userAgent        string
}

// Option configures the client.
type Option func(*clientConfig)

// WithAPIKey sets the API key sent via the X-API-Key header.
func WithAPIKey(key string) Option {
	return func(c *clientConfig) {
		c.apiKey = key
	}
}

// WithTimeout sets the per-attempt timeout. A non-positive value disables
// the timeout entirely.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetries sets the number of retries after the first attempt. Zero
// disables retrying.
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.maxRetries = count
	}
}

// WithRetryDelay sets the constant pause between attempts. Zero retries
// immediately.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *clientConfig) {
		c.retryDelay = delay
	}
}

// WithHTTPClient sets a custom HTTP client. Its Timeout is respected
// as-is; WithTimeout has no effect on a custom client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger attaches a zerolog logger that receives per-attempt request,
// response and retry events. Without it the client is silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = &logger
	}
}

// WithRateLimit paces outgoing attempts to rps requests per second with
// the given burst. Non-positive rps disables pacing.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *clientConfig) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithRequestInterceptor appends an interceptor that runs before each
// attempt, in registration order.
func WithRequestInterceptor(ic RequestInterceptor) Option {
	return func(c *clientConfig) {
		c.reqInterceptors = append(c.reqInterceptors, ic)
	}
}

// WithResponseInterceptor appends an interceptor that runs after each
// received response, in registration order.
func WithResponseInterceptor(ic ResponseInterceptor) Option {
	return func(c *clientConfig) {
		c.respInterceptors = append(c.respInterceptors, ic)
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}
