// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "itinerary-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// AIConfig holds shared settings for stages that call a Generative AI API.
type AIConfig struct {
	// Model is the AI model identifier.
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxTokens bounds the length of one response (default 2048).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`
}

// RetryConfig controls the backoff policy around generation calls.
type RetryConfig struct {
	// MaxAttempts is the total number of calls allowed, including the
	// first (default 5).
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts"`

	// BaseDelay is the wait before the second attempt (default 2s). Each
	// later wait doubles it.
	BaseDelay time.Duration `json:"base_delay" yaml:"base_delay"`

	// MaxDelay caps a single wait before jitter (default 30s).
	MaxDelay time.Duration `json:"max_delay" yaml:"max_delay"`

	// Jitter is the fraction of the computed delay added or removed at
	// random (default 0.25). Values outside [0,1) are clamped.
	Jitter float64 `json:"jitter" yaml:"jitter"`

	// RequestsPerMinute throttles calls shared by every caller in the
	// process. Zero disables the limiter.
	RequestsPerMinute float64 `json:"requests_per_minute" yaml:"requests_per_minute"`
}

// GenerationConfig holds settings for the generation stage.
type GenerationConfig struct {
	AIConfig   `yaml:",inline"`
	HTTPConfig `yaml:",inline"`

	Retry RetryConfig `json:"retry" yaml:"retry"`

	// PlansDir is the directory where generated plan files are written.
	PlansDir string `json:"plans_dir" yaml:"plans_dir"`
}

// CalendarConfig holds settings for the calendar stage.
type CalendarConfig struct {
	// OutputDir is the directory for generated .ics files.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// ProductID is the PRODID written into calendar files.
	ProductID string `json:"product_id" yaml:"product_id"`

	// Attendees are added to every event.
	Attendees []string `json:"attendees,omitempty" yaml:"attendees,omitempty"`
}

// StoreConfig holds settings for the local itinerary store.
type StoreConfig struct {
	// DataDir is the directory containing the SQLite database.
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	Calendar   CalendarConfig   `json:"calendar" yaml:"calendar"`
	Store      StoreConfig      `json:"store" yaml:"store"`
}
