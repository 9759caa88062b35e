// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package calendar turns parsed itinerary days into absolute calendar
// events and submits them, one at a time, to a calendar service.
//
// All timestamps are anchored in UTC. A day's date is the start date plus
// (day number - 1) days and each activity's clock time is applied to that
// date as written; no zone or daylight-saving conversion is attempted.
package calendar

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pdiddy/itinerary-engine/internal/itinerary"
	"github.com/pdiddy/itinerary-engine/pkg/types"
)

const startDateLayout = "2006-01-02"

// Materializer converts itinerary days into CalendarEventSpecs.
type Materializer struct {
	// Now supplies the current time for the default start date. nil uses
	// time.Now.
	Now func() time.Time

	// Attendees are copied onto every event.
	Attendees []string

	// Logger receives a warning for each skipped activity. nil uses
	// slog.Default.
	Logger *slog.Logger
}

// ParseStartDate parses a YYYY-MM-DD start date. An empty string returns
// nil so the materializer falls back to tomorrow.
func ParseStartDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(startDateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q (want YYYY-MM-DD): %w", s, err)
	}
	return &t, nil
}

// DefaultStartDate returns tomorrow's calendar date in the process-local
// zone, anchored at midnight UTC.
func (m *Materializer) DefaultStartDate() time.Time {
	now := time.Now
	if m.Now != nil {
		now = m.Now
	}
	y, mo, d := now().In(time.Local).Date()
	return time.Date(y, mo, d+1, 0, 0, 0, 0, time.UTC)
}

// Materialize produces one event per valid activity, in day-then-activity
// order. start may be nil, in which case DefaultStartDate is used; only its
// year, month, and day are read.
//
// Activities that fail ValidateActivity are skipped with a logged warning
// and reported in the returned slice; the remaining activities are still
// materialized.
func (m *Materializer) Materialize(days []types.ItineraryDay, start *time.Time) ([]types.CalendarEventSpec, []types.SkippedLine) {
	logger := m.Logger
	if logger == nil {
		logger = slog.Default()
	}

	base := m.DefaultStartDate()
	if start != nil {
		y, mo, d := start.Date()
		base = time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
	}

	var specs []types.CalendarEventSpec
	var skipped []types.SkippedLine

	for _, day := range days {
		y, mo, d := base.AddDate(0, 0, day.DayNumber-1).Date()

		for _, act := range day.Activities {
			if err := itinerary.ValidateActivity(day.DayNumber, act); err != nil {
				logger.Warn("skipping activity",
					"day", day.DayNumber,
					"time", act.Time.String(),
					"description", act.Description,
					"error", err)
				skipped = append(skipped, types.SkippedLine{
					Text:   fmt.Sprintf("Day %d %s %s", day.DayNumber, act.Time, act.Description),
					Reason: err.Error(),
				})
				continue
			}

			startAt := time.Date(y, mo, d, act.Time.Hour, act.Time.Minute, 0, 0, time.UTC)
			spec := types.CalendarEventSpec{
				Summary:     fmt.Sprintf("Day %d: %s", day.DayNumber, act.Description),
				Location:    act.Location,
				Description: fmt.Sprintf("Part of Day %d: %s", day.DayNumber, day.Title),
				Start:       startAt,
				End:         startAt.Add(time.Duration(act.DurationMinutes) * time.Minute),
			}
			if len(m.Attendees) > 0 {
				spec.Attendees = append([]string(nil), m.Attendees...)
			}
			specs = append(specs, spec)
		}
	}

	return specs, skipped
}
