// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()
	for _, role := range []Role{
		RoleAccommodation, RoleActivities, RoleItinerary, RoleBudget,
		RoleLocalExpert, RolePreferenceAnalyzer, RoleSeasonality,
	} {
		a, ok := r.Get(role)
		require.True(t, ok, role)
		assert.Equal(t, role, a.Role)
		assert.NotEmpty(t, a.SystemPrompt)
		assert.Greater(t, a.Temperature, 0.0)
	}

	_, ok := r.Get("concierge")
	assert.False(t, ok)
}

func TestRegistry_BestFor(t *testing.T) {
	tests := []struct {
		query string
		want  Role
	}{
		{"Find me a cheap hostel room near the station", RoleAccommodation},
		{"What tours and attractions should I see?", RoleActivities},
		{"Plan a 3 day itinerary for Rome", RoleItinerary},
		{"How much does it cost, is it expensive?", RoleBudget},
		{"Hidden authentic local spots", RoleLocalExpert},
		{"What is the best time to go, weather wise?", RoleSeasonality},
		{"Tokyo", RoleItinerary},
		{"", RoleItinerary},
	}

	r := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, r.BestFor(tt.query).Role)
		})
	}
}

func TestRegistry_BestForTieGoesToItinerary(t *testing.T) {
	// One itinerary keyword, one budget keyword.
	got := NewRegistry().BestFor("schedule on a budget")
	assert.Equal(t, RoleItinerary, got.Role)
}
