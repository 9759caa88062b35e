// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/itinerary-engine/internal/generate"
	"github.com/pdiddy/itinerary-engine/internal/secrets"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	setConfigDefaults()
	t.Cleanup(viper.Reset)
}

func TestPipelineConfig_Defaults(t *testing.T) {
	resetViper(t)
	t.Setenv("ANTHROPIC_API_KEY", "")
	loadedSecrets = map[string]string{secrets.AnthropicAPIKey: "from-file"}
	t.Cleanup(func() { loadedSecrets = nil })

	cfg := pipelineConfig()

	assert.Equal(t, defaultModel, cfg.Generation.Model)
	assert.Equal(t, "from-file", cfg.Generation.APIKey)
	assert.Equal(t, 2048, cfg.Generation.MaxTokens)
	assert.Equal(t, defaultTimeout, cfg.Generation.Timeout)
	assert.Equal(t, 5, cfg.Generation.Retry.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.Generation.Retry.BaseDelay)
	assert.Equal(t, 30*time.Second, cfg.Generation.Retry.MaxDelay)
	assert.InDelta(t, 0.25, cfg.Generation.Retry.Jitter, 1e-9)
	assert.Equal(t, "plans", cfg.Generation.PlansDir)
	assert.Equal(t, "calendars", cfg.Calendar.OutputDir)
	assert.Equal(t, "data", cfg.Store.DataDir)
	assert.Equal(t, defaultUserID, userID())
}

func TestPipelineConfig_Overrides(t *testing.T) {
	resetViper(t)
	viper.Set("generation.api_key", "explicit")
	viper.Set("generation.retry.max_attempts", 3)
	viper.Set("calendar.attendees", []string{"a@example.com"})
	viper.Set("user", "alice")

	cfg := pipelineConfig()

	assert.Equal(t, "explicit", cfg.Generation.APIKey)
	assert.Equal(t, 3, cfg.Generation.Retry.MaxAttempts)
	assert.Equal(t, []string{"a@example.com"}, cfg.Calendar.Attendees)
	assert.Equal(t, "alice", userID())
}

func TestSelectAgent(t *testing.T) {
	a, err := selectAgent("auto", "cheap hostel room")
	require.NoError(t, err)
	assert.Equal(t, generate.RoleAccommodation, a.Role)

	a, err = selectAgent("", "Rome")
	require.NoError(t, err)
	assert.Equal(t, generate.RoleItinerary, a.Role)

	a, err = selectAgent("budget", "anything")
	require.NoError(t, err)
	assert.Equal(t, generate.RoleBudget, a.Role)

	_, err = selectAgent("preference_analyzer", "x")
	assert.Error(t, err)
	_, err = selectAgent("concierge", "x")
	assert.Error(t, err)
}
