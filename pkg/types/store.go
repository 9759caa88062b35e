// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ItineraryStatus is the lifecycle state of a saved itinerary.
type ItineraryStatus string

const (
	StatusActive   ItineraryStatus = "active"
	StatusArchived ItineraryStatus = "archived"
)

// SavedItinerary is a plan alternative the traveller chose to keep.
type SavedItinerary struct {
	ID          string          `json:"id" yaml:"id"`
	UserID      string          `json:"user_id" yaml:"user_id"`
	Destination string          `json:"destination" yaml:"destination"`
	Status      ItineraryStatus `json:"status" yaml:"status"`

	// StartDate and EndDate are calendar dates at UTC midnight.
	StartDate time.Time `json:"start_date" yaml:"start_date"`
	EndDate   time.Time `json:"end_date" yaml:"end_date"`

	Query       string    `json:"query" yaml:"query"`
	Changes     string    `json:"changes,omitempty" yaml:"changes,omitempty"`
	PlanID      string    `json:"plan_id,omitempty" yaml:"plan_id,omitempty"`
	Alternative int       `json:"alternative,omitempty" yaml:"alternative,omitempty"`
	Content     string    `json:"content" yaml:"content"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// SubmissionRecord is one calendar event handed to a calendar sink for a
// saved itinerary.
type SubmissionRecord struct {
	ItineraryID string    `json:"itinerary_id" yaml:"itinerary_id"`
	EventID     string    `json:"event_id,omitempty" yaml:"event_id,omitempty"`
	Summary     string    `json:"summary" yaml:"summary"`
	Start       time.Time `json:"start" yaml:"start"`
	Error       string    `json:"error,omitempty" yaml:"error,omitempty"`
	SubmittedAt time.Time `json:"submitted_at" yaml:"submitted_at"`
}
