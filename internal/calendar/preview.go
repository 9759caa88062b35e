// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package calendar

import (
	"fmt"

	"github.com/pdiddy/itinerary-engine/pkg/types"
)

// PreviewEntry is a dateless, human-readable view of one activity, used to
// show a plan before any calendar is touched.
type PreviewEntry struct {
	DayNumber   int    `json:"day_number" yaml:"day_number"`
	DayTitle    string `json:"day_title" yaml:"day_title"`
	Description string `json:"description" yaml:"description"`
	Location    string `json:"location,omitempty" yaml:"location,omitempty"`
	StartTime   string `json:"start_time" yaml:"start_time"`
	Duration    string `json:"duration" yaml:"duration"`
}

// Preview lists every activity with its clock time and a formatted duration.
func Preview(days []types.ItineraryDay) []PreviewEntry {
	var out []PreviewEntry
	for _, day := range days {
		for _, act := range day.Activities {
			out = append(out, PreviewEntry{
				DayNumber:   day.DayNumber,
				DayTitle:    day.Title,
				Description: act.Description,
				Location:    act.Location,
				StartTime:   act.Time.String(),
				Duration:    FormatDuration(act.DurationMinutes),
			})
		}
	}
	return out
}

// FormatDuration renders minutes as "45 min", "1 hour", "2 hours 30 min".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hrs, mins := minutes/60, minutes%60
	s := fmt.Sprintf("%d hour", hrs)
	if hrs > 1 {
		s += "s"
	}
	if mins > 0 {
		s += fmt.Sprintf(" %d min", mins)
	}
	return s
}
