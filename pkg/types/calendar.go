// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// CalendarEventSpec describes one event to be created by a calendar
// service. Start and End are always in UTC.
type CalendarEventSpec struct {
	Summary     string    `json:"summary" yaml:"summary"`
	Location    string    `json:"location" yaml:"location"`
	Description string    `json:"description" yaml:"description"`
	Start       time.Time `json:"start" yaml:"start"`
	End         time.Time `json:"end" yaml:"end"`
	Attendees   []string  `json:"attendees,omitempty" yaml:"attendees,omitempty"`
}

// EventResult is the outcome of submitting one CalendarEventSpec.
// Exactly one of EventID and Err is set.
type EventResult struct {
	Spec    CalendarEventSpec `json:"spec" yaml:"spec"`
	EventID string            `json:"event_id,omitempty" yaml:"event_id,omitempty"`
	Err     error             `json:"-" yaml:"-"`
}

// OK reports whether the event was created.
func (r EventResult) OK() bool {
	return r.Err == nil
}

// SubmitSummary holds counts from one calendar submission pass.
type SubmitSummary struct {
	Created int
	Failed  int
}

// Total returns the number of events attempted.
func (s SubmitSummary) Total() int {
	return s.Created + s.Failed
}

// HasFailures reports whether any event failed.
func (s SubmitSummary) HasFailures() bool {
	return s.Failed > 0
}
