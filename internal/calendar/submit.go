// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package calendar

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/itinerary-engine/pkg/types"
)

// Service creates calendar events. Implementations return an opaque event
// identifier on success.
type Service interface {
	CreateEvent(ctx context.Context, spec types.CalendarEventSpec) (string, error)
}

// EventCreationError wraps the failure to create one event. It is recorded
// in that event's EventResult and never stops the remaining events.
type EventCreationError struct {
	Index   int
	Summary string
	Err     error
}

func (e *EventCreationError) Error() string {
	return fmt.Sprintf("creating event %d (%s): %v", e.Index, e.Summary, e.Err)
}

func (e *EventCreationError) Unwrap() error {
	return e.Err
}

// IsEventCreationFailure reports whether err is an *EventCreationError.
func IsEventCreationFailure(err error) bool {
	var ece *EventCreationError
	return errors.As(err, &ece)
}

// Submit sends specs to svc sequentially, in order, and collects one result
// per spec. A failed event does not abort the ones after it. Progress lines
// are written to w.
//
// Once ctx is done the remaining specs are not sent; each is recorded as
// failed with the context error.
func Submit(ctx context.Context, svc Service, specs []types.CalendarEventSpec, w io.Writer) ([]types.EventResult, types.SubmitSummary) {
	results := make([]types.EventResult, 0, len(specs))
	var summary types.SubmitSummary

	for i, spec := range specs {
		var id string
		err := ctx.Err()
		if err == nil {
			id, err = svc.CreateEvent(ctx, spec)
		}

		if err != nil {
			cerr := &EventCreationError{Index: i, Summary: spec.Summary, Err: err}
			fmt.Fprintf(w, "failed  %s: %v\n", spec.Summary, err)
			results = append(results, types.EventResult{Spec: spec, Err: cerr})
			summary.Failed++
			continue
		}

		fmt.Fprintf(w, "created %s (%s)\n", spec.Summary, id)
		results = append(results, types.EventResult{Spec: spec, EventID: id})
		summary.Created++
	}

	fmt.Fprintf(w, "\ncreated: %d, failed: %d\n", summary.Created, summary.Failed)
	return results, summary
}
