// Package config loads client settings from YAML files and
// AY32_-prefixed environment variables.
//
// Sources are merged in priority order: defaults, then the YAML file,
// then environment variables. Keys are flat snake_case, so AY32_BASE_URL
// overrides base_url from the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variable names before they are
// merged as config keys.
const EnvPrefix = "AY32_"

// EnvConfigFile names the config file to load when Load is called with
// an empty path.
const EnvConfigFile = "AY32_CONFIG"

// Config holds every client setting. Durations are expressed in
// milliseconds to stay aligned with the wire-level knobs.
type Config struct {
	BaseURL      string `koanf:"base_url"`
	APIKey       string `koanf:"api_key"`
	TimeoutMs    int    `koanf:"timeout_ms"`
	MaxRetries   int    `koanf:"max_retries"`
	RetryDelayMs int    `koanf:"retry_delay_ms"`
	LogLevel     string `koanf:"log_level"`
	LogPretty    bool   `koanf:"log_pretty"`
}

// Timeout returns the per-attempt request timeout. Zero disables it.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// RetryDelay returns the pause between retry attempts.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMs) * time.Millisecond
}

// Validate checks the loaded settings for values the client cannot run
// with.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url is required")
	}
	if c.TimeoutMs < 0 {
		return fmt.Errorf("timeout_ms must not be negative (got %d)", c.TimeoutMs)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must not be negative (got %d)", c.MaxRetries)
	}
	if c.RetryDelayMs < 0 {
		return fmt.Errorf("retry_delay_ms must not be negative (got %d)", c.RetryDelayMs)
	}
	return nil
}

// Load reads configuration from defaults, the YAML file at path (or
// $AY32_CONFIG when path is empty; no file at all is fine) and finally
// the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"timeout_ms":     60000,
		"max_retries":    2,
		"retry_delay_ms": 1000,
		"log_level":      "info",
		"log_pretty":     false,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// Keys are flat snake_case, so only the prefix is stripped;
	// underscores stay as they are.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// LoadDotenv loads .env files into the process environment so that Load
// picks their values up. With no arguments a missing .env is not an
// error.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
	}
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("load dotenv: %w", err)
	}
	return nil
}
