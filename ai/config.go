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

// Config holds configuration for AI judge providers.
type Config struct {
	// Host is the base URL for the judge's OpenAI-compatible API.
	// Example: "http://localhost:11434/v1" for a local server
	Host string

	// Model is the model identifier to use for all judge calls.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	Model string

	// JudgeTimeout bounds each attempt of a targeted relevance-scoring
	// call. Default: 30s.
	JudgeTimeout time.Duration

	// CallTimeout bounds each attempt of general calls
	// (Summarize, RankTopics). Default: 60s.
	CallTimeout time.Duration

	// MaxRetries is the number of attempts before a call fails.
	// Default: 3.
	MaxRetries int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithHost sets the judge service host URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithModel sets the judge model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithJudgeTimeout sets the per-attempt timeout for relevance-scoring calls.
func WithJudgeTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.JudgeTimeout = d
	}
}

// WithCallTimeout sets the per-attempt timeout for general calls.
func WithCallTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.CallTimeout = d
	}
}

// WithMaxRetries sets the attempt count for judge calls.
func WithMaxRetries(n int) ConfigOption {
	return func(c *Config) {
		c.MaxRetries = n
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services.
func DefaultConfig() *Config {
	return &Config{
		Host:         "http://localhost:11434/v1",
		Model:        "qwen2.5:3b",
		JudgeTimeout: 30 * time.Second,
		CallTimeout:  60 * time.Second,
		MaxRetries:   3,
	}
}

// NewConfig creates a Config with default values and applies the
// provided options. This is the recommended way to create a Config.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434/v1"),
//	    ai.WithModel("gpt-4o-mini"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to the host if missing, which is
// required by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/")
		c.Host = c.Host + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Host == "" {
		return errors.New("ai config: Host is required")
	}
	if c.Model == "" {
		return errors.New("ai config: Model is required")
	}
	if c.JudgeTimeout <= 0 {
		return errors.New("ai config: JudgeTimeout must be positive")
	}
	if c.CallTimeout <= 0 {
		return errors.New("ai config: CallTimeout must be positive")
	}
	if c.MaxRetries < 1 {
		return errors.New("ai config: MaxRetries must be at least 1")
	}
	return nil
}

// JudgePolicy returns the retry policy for targeted relevance-scoring calls.
func (c *Config) JudgePolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: c.MaxRetries,
		Timeout:     c.JudgeTimeout,
		Backoff:     LinearBackoff,
	}
}

// CallPolicy returns the retry policy for general judge calls.
func (c *Config) CallPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: c.MaxRetries,
		Timeout:     c.CallTimeout,
		Backoff:     LinearBackoff,
	}
}
