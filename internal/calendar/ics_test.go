// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package calendar

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/itinerary-engine/pkg/types"
)

func testWriter() *ICSWriter {
	w := NewICSWriter("")
	n := 0
	w.newUID = func() string {
		n++
		return fmt.Sprintf("uid-%d@test", n)
	}
	w.now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }
	return w
}

func TestICSWriterRoundTrip(t *testing.T) {
	w := testWriter()
	spec := types.CalendarEventSpec{
		Summary:     "Day 1: Land at",
		Location:    "Airport",
		Description: "Part of Day 1: Arrival",
		Start:       time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC),
		End:         time.Date(2024, 7, 1, 11, 0, 0, 0, time.UTC),
		Attendees:   []string{"traveller@example.com"},
	}

	id, err := w.CreateEvent(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, "uid-1@test", id)
	assert.Equal(t, 1, w.Len())

	cal, err := ical.ParseCalendar(strings.NewReader(w.Serialize()))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, "uid-1@test", ev.Id())
	assert.Equal(t, "Day 1: Land at", ev.GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "Airport", ev.GetProperty(ical.ComponentPropertyLocation).Value)

	start, err := ev.GetStartAt()
	require.NoError(t, err)
	assert.True(t, spec.Start.Equal(start), "start = %s", start)
	end, err := ev.GetEndAt()
	require.NoError(t, err)
	assert.True(t, spec.End.Equal(end), "end = %s", end)

	attendees := ev.Attendees()
	require.Len(t, attendees, 1)
	assert.Equal(t, "traveller@example.com", attendees[0].Email())
}

func TestICSWriterRejectsBadSpecs(t *testing.T) {
	w := testWriter()
	at := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

	_, err := w.CreateEvent(context.Background(), types.CalendarEventSpec{Summary: " ", Start: at, End: at.Add(time.Hour)})
	assert.Error(t, err)

	_, err = w.CreateEvent(context.Background(), types.CalendarEventSpec{Summary: "x", Start: at, End: at})
	assert.Error(t, err)

	assert.Equal(t, 0, w.Len())
}

func TestICSWriterWithSubmit(t *testing.T) {
	w := testWriter()
	specs := sampleSpecs(3)
	specs[1].End = specs[1].Start

	results, summary := Submit(context.Background(), w, specs, &strings.Builder{})
	assert.Equal(t, types.SubmitSummary{Created: 2, Failed: 1}, summary)
	assert.Equal(t, "uid-1@test", results[0].EventID)
	assert.Equal(t, "uid-2@test", results[2].EventID)
	assert.Equal(t, 2, w.Len())
}

func TestICSWriterWriteFile(t *testing.T) {
	w := testWriter()
	_, err := w.CreateEvent(context.Background(), sampleSpecs(1)[0])
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "nested", "trip.ics")
	require.NoError(t, w.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BEGIN:VCALENDAR")
	assert.Contains(t, string(data), "SUMMARY:Day 1: item 0")

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".itinerary-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
