// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the itinerary-engine
// pipeline: generation results, plan alternatives, parsed itinerary days,
// calendar event specs, preferences, and stage configuration.
package types

import "time"

// GenerationResult is the raw text returned by the generation service for
// one request, together with the retry history that produced it.
type GenerationResult struct {
	// RequestID correlates log lines for one generation call.
	RequestID string `json:"request_id" yaml:"request_id"`

	// Text is the unmodified response body.
	Text string `json:"text" yaml:"text"`

	// Attempts is the number of calls made, including the successful one.
	Attempts int `json:"attempts" yaml:"attempts"`

	// Delays lists the backoff waits taken between attempts, in order.
	Delays []time.Duration `json:"delays,omitempty" yaml:"delays,omitempty"`
}

// PlanKind labels the content of a plan alternative.
type PlanKind string

// PlanItinerary is the only kind produced today.
const PlanItinerary PlanKind = "itinerary"

// PlanAlternative is one of the two candidate plans carved out of a single
// generation response.
type PlanAlternative struct {
	// ID is the 1-based ordinal of the alternative.
	ID int `json:"id" yaml:"id"`

	// Content is the trimmed plan text.
	Content string `json:"content" yaml:"content"`

	Kind PlanKind `json:"kind" yaml:"kind"`
}

// PartitionStrategy records which rule produced a partition.
type PartitionStrategy string

const (
	// StrategySeparator splits on a line holding only "---".
	StrategySeparator PartitionStrategy = "separator"

	// StrategyMarker splits at a "second option" heading.
	StrategyMarker PartitionStrategy = "marker"

	// StrategyMidpoint cuts the text in half by character count. The cut
	// ignores content and can land inside a day or an activity.
	StrategyMidpoint PartitionStrategy = "midpoint"
)

// Partition is the output of splitting one generation response.
type Partition struct {
	Alternatives [2]PlanAlternative `json:"alternatives" yaml:"alternatives"`
	Strategy     PartitionStrategy  `json:"strategy" yaml:"strategy"`
}

// Degraded reports whether the partition came from the content-blind
// midpoint fallback.
func (p Partition) Degraded() bool {
	return p.Strategy == StrategyMidpoint
}

// PlanFile is the on-disk record written by the generate command.
type PlanFile struct {
	RequestID    string            `json:"request_id" yaml:"request_id"`
	Query        string            `json:"query" yaml:"query"`
	Agent        string            `json:"agent" yaml:"agent"`
	GeneratedAt  time.Time         `json:"generated_at" yaml:"generated_at"`
	Strategy     PartitionStrategy `json:"strategy" yaml:"strategy"`
	Alternatives []PlanAlternative `json:"alternatives" yaml:"alternatives"`
}
