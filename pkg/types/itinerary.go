// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// DefaultActivityMinutes is the duration given to an activity whose line
// carries no duration markup.
const DefaultActivityMinutes = 60

// MaxActivityMinutes is the longest duration an activity may carry. Longer
// durations in plan text are ignored like a missing duration.
const MaxActivityMinutes = 24 * 60

// ClockTime is a wall-clock time of day without a date or zone.
type ClockTime struct {
	Hour   int `json:"hour" yaml:"hour"`
	Minute int `json:"minute" yaml:"minute"`
}

// Valid reports whether the time lies within 00:00-23:59.
func (c ClockTime) Valid() bool {
	return c.Hour >= 0 && c.Hour <= 23 && c.Minute >= 0 && c.Minute <= 59
}

// String formats the time as HH:MM.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Activity is one timed entry under an itinerary day.
type Activity struct {
	Time ClockTime `json:"time" yaml:"time"`

	// Description is the activity text with location, duration, and other
	// parenthetical markup removed.
	Description string `json:"description" yaml:"description"`

	// Location is the first bold span of the line; empty when absent.
	Location string `json:"location,omitempty" yaml:"location,omitempty"`

	DurationMinutes int `json:"duration_minutes" yaml:"duration_minutes"`
}

// ItineraryDay groups the activities listed under one "## Day N: Title"
// header. Day numbers are taken as written; they need not be contiguous.
type ItineraryDay struct {
	DayNumber  int        `json:"day_number" yaml:"day_number"`
	Title      string     `json:"title" yaml:"title"`
	Activities []Activity `json:"activities" yaml:"activities"`
}

// SkippedLine records an input line that looked like an activity or event
// but was dropped during parsing or materialization.
type SkippedLine struct {
	// Line is the 1-based line number in the plan text, or 0 when the skip
	// happened after parsing.
	Line   int    `json:"line" yaml:"line"`
	Text   string `json:"text" yaml:"text"`
	Reason string `json:"reason" yaml:"reason"`
}
