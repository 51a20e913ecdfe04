package ay32

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/laixingyu123/ay32-client-go/config"
	"github.com/laixingyu123/ay32-client-go/internal/api"
)

// Version is the client library version.
const Version = api.Version

// Client is the entry point for all AY32 operations. It holds only the
// transport, carries no per-call state, and is safe for concurrent use.
type Client struct {
	api *api.Client
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}

	cfg := &clientConfig{
		timeout:    DefaultTimeout,
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(buildAPIConfig(baseURL, cfg))
	if err != nil {
		return nil, err
	}

	return &Client{api: apiClient}, nil
}

// NewFromConfig creates a client from a loaded configuration. Additional
// options are applied on top of the configuration values.
func NewFromConfig(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := []Option{
		WithAPIKey(cfg.APIKey),
		WithTimeout(cfg.Timeout()),
		WithRetries(cfg.MaxRetries),
		WithRetryDelay(cfg.RetryDelay()),
		WithLogger(newLogger(cfg.LogLevel, cfg.LogPretty)),
	}
	return New(cfg.BaseURL, append(base, opts...)...)
}

// NewFromEnv creates a client from built-in defaults, the optional YAML
// file named by AY32_CONFIG, and AY32_-prefixed environment variables.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...)
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.api.BaseURL()
}

// buildAPIConfig translates the resolved client options into the
// transport configuration. Values the caller explicitly zeroed out are
// passed down as disabled rather than re-defaulted.
func buildAPIConfig(baseURL string, cfg *clientConfig) api.Config {
	apiCfg := api.Config{
		BaseURL:              baseURL,
		APIKey:               cfg.apiKey,
		Timeout:              cfg.timeout,
		MaxRetries:           cfg.maxRetries,
		RetryDelay:           cfg.retryDelay,
		HTTPClient:           cfg.httpClient,
		Logger:               cfg.logger,
		Limiter:              cfg.limiter,
		RequestInterceptors:  cfg.reqInterceptors,
		ResponseInterceptors: cfg.respInterceptors,
		UserAgent:            cfg.userAgent,
	}
	if apiCfg.Timeout <= 0 {
		apiCfg.Timeout = -1
	}
	if apiCfg.MaxRetries <= 0 {
		apiCfg.MaxRetries = -1
	}
	if apiCfg.RetryDelay <= 0 {
		apiCfg.RetryDelay = -1
	}
	return apiCfg
}

// newLogger builds the client logger from configuration values.
func newLogger(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var w io.Writer = os.Stderr
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Str("component", "ay32").Logger()
}
