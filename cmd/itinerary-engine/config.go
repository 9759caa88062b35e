// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/itinerary-engine/internal/secrets"
	"github.com/pdiddy/itinerary-engine/pkg/types"
)

const (
	defaultModel     = "claude-sonnet-4-20250514"
	defaultTimeout   = 120 * time.Second
	defaultUserAgent = "itinerary-engine/0.1"
	defaultUserID    = "default"
)

// envKeyReplacer maps "generation.retry.max_attempts" to
// ITINERARY_ENGINE_GENERATION_RETRY_MAX_ATTEMPTS.
var envKeyReplacer = strings.NewReplacer(".", "_")

func setConfigDefaults() {
	viper.SetDefault("generation.model", defaultModel)
	viper.SetDefault("generation.max_tokens", 2048)
	viper.SetDefault("generation.timeout", defaultTimeout)
	viper.SetDefault("generation.user_agent", defaultUserAgent)
	viper.SetDefault("generation.plans_dir", "plans")
	viper.SetDefault("generation.retry.max_attempts", 5)
	viper.SetDefault("generation.retry.base_delay", 2*time.Second)
	viper.SetDefault("generation.retry.max_delay", 30*time.Second)
	viper.SetDefault("generation.retry.jitter", 0.25)
	viper.SetDefault("generation.retry.requests_per_minute", 0)
	viper.SetDefault("calendar.output_dir", "calendars")
	viper.SetDefault("calendar.product_id", "")
	viper.SetDefault("calendar.attendees", []string{})
	viper.SetDefault("store.data_dir", "data")
	viper.SetDefault("user", defaultUserID)
}

// pipelineConfig assembles the stage configuration from viper: defaults,
// then the config file, then ITINERARY_ENGINE_* variables, then bound flags.
func pipelineConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Generation: types.GenerationConfig{
			AIConfig: types.AIConfig{
				Model:     viper.GetString("generation.model"),
				APIKey:    secrets.Resolve(loadedSecrets, secrets.AnthropicAPIKey, viper.GetString("generation.api_key")),
				MaxTokens: viper.GetInt("generation.max_tokens"),
			},
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("generation.timeout"),
				UserAgent: viper.GetString("generation.user_agent"),
			},
			Retry: types.RetryConfig{
				MaxAttempts:       viper.GetInt("generation.retry.max_attempts"),
				BaseDelay:         viper.GetDuration("generation.retry.base_delay"),
				MaxDelay:          viper.GetDuration("generation.retry.max_delay"),
				Jitter:            viper.GetFloat64("generation.retry.jitter"),
				RequestsPerMinute: viper.GetFloat64("generation.retry.requests_per_minute"),
			},
			PlansDir: viper.GetString("generation.plans_dir"),
		},
		Calendar: types.CalendarConfig{
			OutputDir: viper.GetString("calendar.output_dir"),
			ProductID: viper.GetString("calendar.product_id"),
			Attendees: viper.GetStringSlice("calendar.attendees"),
		},
		Store: types.StoreConfig{
			DataDir: viper.GetString("store.data_dir"),
		},
	}
}

// userID returns the traveller the command acts for.
func userID() string {
	if u := viper.GetString("user"); u != "" {
		return u
	}
	return defaultUserID
}
