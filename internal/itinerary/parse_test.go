// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package itinerary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/itinerary-engine/pkg/types"
)

func TestParseDayHeader(t *testing.T) {
	tests := []struct {
		line      string
		wantNum   int
		wantTitle string
		wantOK    bool
	}{
		{"## Day 3: Coastal Hike", 3, "Coastal Hike", true},
		{"## day 1:   Arrival  ", 1, "Arrival", true},
		{"##DAY 12:Final", 12, "Final", true},
		{"  ## Day 2: Tour", 2, "Tour", true},
		{"### Day 2: Deeper heading", 2, "Deeper heading", true},
		{"#### day 5: Rest", 5, "Rest", true},
		{"# Day 1: Too few hashes", 0, "", false},
		{"## Day one: Words", 0, "", false},
		{"## Day 4:", 0, "", false},
		{"Day 1: no marker", 0, "", false},
		{"## Overview", 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			n, title, ok := ParseDayHeader(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantNum, n)
			assert.Equal(t, tt.wantTitle, title)
		})
	}
}

func TestMatchActivity(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   types.Activity
		wantOK bool
	}{
		{
			name: "full markup",
			line: "- 09:00 Visit **Old Town** (2 hours)",
			want: types.Activity{
				Time:            types.ClockTime{Hour: 9, Minute: 0},
				Description:     "Visit",
				Location:        "Old Town",
				DurationMinutes: 120,
			},
			wantOK: true,
		},
		{
			name: "single digit hour and dash after time",
			line: "- 7:15 - Sunrise walk",
			want: types.Activity{
				Time:            types.ClockTime{Hour: 7, Minute: 15},
				Description:     "Sunrise walk",
				DurationMinutes: 60,
			},
			wantOK: true,
		},
		{
			name: "out of range time is still recognized",
			line: "- 25:00 Midnight snack",
			want: types.Activity{
				Time:            types.ClockTime{Hour: 25, Minute: 0},
				Description:     "Midnight snack",
				DurationMinutes: 60,
			},
			wantOK: true,
		},
		{
			name: "uppercase am suffix without space",
			line: "- 09:00AM Breakfast (1 hour)",
			want: types.Activity{
				Time:            types.ClockTime{Hour: 9, Minute: 0},
				Description:     "Breakfast",
				DurationMinutes: 60,
			},
			wantOK: true,
		},
		{
			name: "pm suffix converts to 24 hour clock",
			line: "- 2:15 pm Tea at **Pavilion**",
			want: types.Activity{
				Time:            types.ClockTime{Hour: 14, Minute: 15},
				Description:     "Tea at",
				Location:        "Pavilion",
				DurationMinutes: 60,
			},
			wantOK: true,
		},
		{
			name: "twelve am is midnight",
			line: "- 12:30am Night market",
			want: types.Activity{
				Time:            types.ClockTime{Hour: 0, Minute: 30},
				Description:     "Night market",
				DurationMinutes: 60,
			},
			wantOK: true,
		},
		{
			name: "twelve pm is noon",
			line: "- 12:00PM Lunch",
			want: types.Activity{
				Time:            types.ClockTime{Hour: 12, Minute: 0},
				Description:     "Lunch",
				DurationMinutes: 60,
			},
			wantOK: true,
		},
		{
			name: "word starting with am is not a suffix",
			line: "- 10:00 amusement park",
			want: types.Activity{
				Time:            types.ClockTime{Hour: 10, Minute: 0},
				Description:     "amusement park",
				DurationMinutes: 60,
			},
			wantOK: true,
		},
		{name: "bullet without time", line: "- Bring sunscreen", wantOK: false},
		{name: "time without bullet", line: "09:00 Breakfast", wantOK: false},
		{name: "separator line", line: "---", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchActivity(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseRoundTripDayHeader(t *testing.T) {
	days := ParseDays("## Day 3: Coastal Hike\n- 08:00 Trailhead **Cape Trail** (4 hours)")
	require.Len(t, days, 1)
	assert.Equal(t, 3, days[0].DayNumber)
	assert.Equal(t, "Coastal Hike", days[0].Title)
	require.Len(t, days[0].Activities, 1)
	assert.Equal(t, "Cape Trail", days[0].Activities[0].Location)
	assert.Equal(t, 240, days[0].Activities[0].DurationMinutes)
}

func TestParseGroupsActivitiesUnderDays(t *testing.T) {
	content := `# Trip to Lisbon

Some intro text.

## Day 1: Arrival
- 10:00 Land at **Airport** (1 hour)
- Pack light
- 13:00 Lunch in Baixa

## Day 2: Tour
- 09:00 City walk (3 hours)
`
	res := Parse(content)
	require.Len(t, res.Days, 2)
	assert.Empty(t, res.Skipped)
	assert.Equal(t, 3, res.ActivityCount())

	assert.Equal(t, 1, res.Days[0].DayNumber)
	assert.Equal(t, "Arrival", res.Days[0].Title)
	require.Len(t, res.Days[0].Activities, 2)
	assert.Equal(t, "Land at", res.Days[0].Activities[0].Description)
	assert.Equal(t, "Airport", res.Days[0].Activities[0].Location)
	assert.Equal(t, "Lunch in Baixa", res.Days[0].Activities[1].Description)

	assert.Equal(t, 2, res.Days[1].DayNumber)
	assert.Equal(t, 180, res.Days[1].Activities[0].DurationMinutes)
}

func TestParseDropsEmptyDays(t *testing.T) {
	content := "## Day 1: Travel\n- Just fly\n## Day 2: Explore\n- 09:00 Market\n## Day 3: Rest\n"
	days := ParseDays(content)
	require.Len(t, days, 1)
	assert.Equal(t, 2, days[0].DayNumber)
}

func TestParsePreservesFirstSeenOrder(t *testing.T) {
	content := "## Day 2: B\n- 09:00 b\n## Day 1: A\n- 09:00 a\n## Day 2: B again\n- 10:00 c\n"
	days := ParseDays(content)
	require.Len(t, days, 3)
	assert.Equal(t, []int{2, 1, 2}, []int{days[0].DayNumber, days[1].DayNumber, days[2].DayNumber})
}

func TestParseReportsOrphanActivities(t *testing.T) {
	content := "- 08:00 Before any day\n## Day 0: Nowhere\n- 09:00 Lost\n## Day 1: Real\n- 10:00 Kept\n"
	res := Parse(content)
	require.Len(t, res.Days, 1)
	assert.Equal(t, "Kept", res.Days[0].Activities[0].Description)

	require.Len(t, res.Skipped, 3)
	assert.Equal(t, 1, res.Skipped[0].Line)
	assert.Equal(t, "activity before first day header", res.Skipped[0].Reason)
	assert.Equal(t, "day number must be positive", res.Skipped[1].Reason)
	assert.Equal(t, "activity under invalid day header", res.Skipped[2].Reason)
}

func TestParseHandlesCRLF(t *testing.T) {
	days := ParseDays("## Day 1: Windows\r\n- 09:00 Boot up (30 min)\r\n")
	require.Len(t, days, 1)
	assert.Equal(t, "Windows", days[0].Title)
	assert.Equal(t, 30, days[0].Activities[0].DurationMinutes)
}

func TestParseEmptyInput(t *testing.T) {
	res := Parse("")
	assert.Empty(t, res.Days)
	assert.Empty(t, res.Skipped)
}

func TestParseDeeperDayHeadingsStartNewDays(t *testing.T) {
	res := Parse("## Day 1: Arrival\n- 10:00 Land (1 hour)\n### Day 2: Tour\n- 09:00 City walk (3 hours)")
	require.Len(t, res.Days, 2)
	assert.Equal(t, 1, res.Days[0].DayNumber)
	require.Len(t, res.Days[0].Activities, 1)
	assert.Equal(t, "Land", res.Days[0].Activities[0].Description)

	assert.Equal(t, 2, res.Days[1].DayNumber)
	assert.Equal(t, "Tour", res.Days[1].Title)
	require.Len(t, res.Days[1].Activities, 1)
	assert.Equal(t, "City walk", res.Days[1].Activities[0].Description)
	assert.Equal(t, 180, res.Days[1].Activities[0].DurationMinutes)
}

func TestParseKeepsTwelveHourTimes(t *testing.T) {
	res := Parse("## Day 1: A\n- 09:00AM Breakfast (1 hour)\n- 9:30am Walk\n- 1:45pm Museum (2 hours)")
	require.Len(t, res.Days, 1)
	acts := res.Days[0].Activities
	require.Len(t, acts, 3)
	assert.Equal(t, types.ClockTime{Hour: 9, Minute: 0}, acts[0].Time)
	assert.Equal(t, "Breakfast", acts[0].Description)
	assert.Equal(t, types.ClockTime{Hour: 9, Minute: 30}, acts[1].Time)
	assert.Equal(t, "Walk", acts[1].Description)
	assert.Equal(t, types.ClockTime{Hour: 13, Minute: 45}, acts[2].Time)
	assert.Empty(t, res.Skipped)
}

func TestValidateActivity(t *testing.T) {
	ok := types.Activity{Time: types.ClockTime{Hour: 23, Minute: 59}, DurationMinutes: 60}
	assert.NoError(t, ValidateActivity(1, ok))

	bad := types.Activity{Time: types.ClockTime{Hour: 24, Minute: 0}, DurationMinutes: 60}
	err := ValidateActivity(2, bad)
	var w *ActivityParseWarning
	require.True(t, errors.As(err, &w))
	assert.Equal(t, 2, w.DayNumber)
	assert.Equal(t, "time out of range", w.Reason)

	noDur := types.Activity{Time: types.ClockTime{Hour: 9}, DurationMinutes: 0}
	assert.Error(t, ValidateActivity(1, noDur))

	fullDay := types.Activity{Time: types.ClockTime{Hour: 9}, DurationMinutes: types.MaxActivityMinutes}
	assert.NoError(t, ValidateActivity(1, fullDay))

	tooLong := types.Activity{Time: types.ClockTime{Hour: 9}, DurationMinutes: 5999999999940}
	err = ValidateActivity(3, tooLong)
	require.True(t, errors.As(err, &w))
	assert.Equal(t, "duration too long", w.Reason)
}
