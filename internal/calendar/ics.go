// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package calendar

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/pdiddy/itinerary-engine/pkg/types"
)

const (
	defaultProductID = "-//pdiddy//itinerary-engine//EN"
	uidDomain        = "itinerary-engine"
)

// ICSWriter is a Service that collects events into an iCalendar document
// which can then be written to disk and imported into any calendar.
type ICSWriter struct {
	cal   *ical.Calendar
	count int

	// now stamps DTSTAMP; newUID generates event UIDs. Tests replace both.
	now    func() time.Time
	newUID func() string
}

// NewICSWriter returns an empty calendar with the given PRODID. An empty
// productID uses a default.
func NewICSWriter(productID string) *ICSWriter {
	if productID == "" {
		productID = defaultProductID
	}
	cal := ical.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ical.MethodPublish)
	return &ICSWriter{
		cal:    cal,
		now:    time.Now,
		newUID: func() string { return uuid.NewString() + "@" + uidDomain },
	}
}

// CreateEvent adds spec as a VEVENT and returns its UID.
func (w *ICSWriter) CreateEvent(ctx context.Context, spec types.CalendarEventSpec) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(spec.Summary) == "" {
		return "", errors.New("event summary is empty")
	}
	if !spec.End.After(spec.Start) {
		return "", fmt.Errorf("event end %s is not after start %s",
			spec.End.Format(time.RFC3339), spec.Start.Format(time.RFC3339))
	}

	uid := w.newUID()
	ev := w.cal.AddEvent(uid)
	ev.SetDtStampTime(w.now().UTC())
	ev.SetStartAt(spec.Start.UTC())
	ev.SetEndAt(spec.End.UTC())
	ev.SetSummary(spec.Summary)
	if spec.Location != "" {
		ev.SetLocation(spec.Location)
	}
	if spec.Description != "" {
		ev.SetDescription(spec.Description)
	}
	for _, a := range spec.Attendees {
		ev.AddAttendee("mailto:"+a,
			ical.CalendarUserTypeIndividual,
			ical.ParticipationStatusNeedsAction,
			ical.ParticipationRoleReqParticipant,
		)
	}

	w.count++
	return uid, nil
}

// Len returns the number of events added.
func (w *ICSWriter) Len() int {
	return w.count
}

// Serialize returns the calendar as iCalendar text.
func (w *ICSWriter) Serialize() string {
	return w.cal.Serialize()
}

// WriteFile writes the calendar to path atomically: the data goes to a
// temp file in the same directory which is then renamed over path.
func (w *ICSWriter) WriteFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating calendar directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".itinerary-*.ics.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(w.Serialize()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing calendar: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing calendar: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
