// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"errors"
	"strings"
	"time"
)

// Config holds configuration for the LLM-backed extraction service.
type Config struct {
	// Host is the base URL for the OpenAI-compatible chat API.
	// Example: "http://localhost:11434/v1" for a local server
	Host string

	// Model is the chat model identifier used for extraction.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	Model string

	// Token is the API token. Use "none" for local services that don't
	// require authentication.
	Token string

	// MaxRetries is the maximum number of attempts for a failing service
	// call. Default: 3
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff between
	// attempts. Default: 1s
	RetryDelay time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithHost sets the extraction service host URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithModel sets the extraction model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithToken sets the API token.
func WithToken(token string) ConfigOption {
	return func(c *Config) {
		c.Token = token
	}
}

// WithMaxRetries sets the maximum service-call attempts.
func WithMaxRetries(n int) ConfigOption {
	return func(c *Config) {
		c.MaxRetries = n
	}
}

// WithRetryDelay sets the base backoff delay between attempts.
func WithRetryDelay(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.RetryDelay = d
	}
}

// DefaultConfig returns a Config with sensible defaults for a local
// OpenAI-compatible service.
func DefaultConfig() *Config {
	return &Config{
		Host:       "http://localhost:11434/v1",
		Model:      "qwen2.5:3b",
		Token:      "none",
		MaxRetries: 3,
		RetryDelay: time.Second,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form. It adds
// the /v1 suffix to the host if missing, which OpenAI-compatible APIs
// (Ollama, LocalAI, vLLM) require.
func (c *Config) Normalize() {
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/") + "/v1"
	}
}

// Validate checks that the configuration is valid and complete. It
// normalizes the configuration first.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Host == "" {
		return errors.New("ai config: Host is required")
	}
	if c.Model == "" {
		return errors.New("ai config: Model is required")
	}
	if c.Token == "" {
		return errors.New("ai config: Token is required")
	}
	if c.MaxRetries < 1 {
		return errors.New("ai config: MaxRetries must be at least 1")
	}
	if c.RetryDelay <= 0 {
		return errors.New("ai config: RetryDelay must be positive")
	}
	return nil
}
