package core

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBasePath = "/api/v1"

	// EnvBaseURL overrides the endpoint root when set in the process
	// environment.
	EnvBaseURL = "FRAUD_API_BASE_URL"

	DefaultContentType = "application/json"
)

type Config struct {
	// BaseURL is the endpoint root every operation path is resolved
	// against, eg "https://fraud.example.com/api/v1". A bare path keeps
	// the transport relative to the host of the injected http client.
	BaseURL string `koanf:"base_url" mapstructure:"base_url"`

	UserAgent string `koanf:"user_agent" mapstructure:"user_agent"`

	// RequestTimeout only seeds the default http client; the runtime
	// itself enforces no per-operation deadline.
	RequestTimeout time.Duration `koanf:"request_timeout" mapstructure:"request_timeout"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL:        DefaultBasePath,
		UserAgent:      "go-fraudclient",
		RequestTimeout: 30 * time.Second,
	}
}

func (c Config) Validate() error {
	trimmed := strings.TrimSpace(c.BaseURL)
	if trimmed == "" {
		return fmt.Errorf("core: base_url is required")
	}
	if _, err := url.Parse(trimmed); err != nil {
		return fmt.Errorf("core: base_url is not a valid url: %w", err)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("core: request_timeout must not be negative")
	}
	return nil
}
