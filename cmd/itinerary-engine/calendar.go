// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/itinerary-engine/internal/calendar"
	"github.com/pdiddy/itinerary-engine/internal/itinerary"
	"github.com/pdiddy/itinerary-engine/internal/store"
	"github.com/pdiddy/itinerary-engine/pkg/types"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar <plan>",
	Short: "Write a plan alternative's activities to an iCalendar file",
	Long: `Calendar parses the chosen alternative, places each activity on the
trip's dates (day N falls N-1 days after --start, default tomorrow), and
writes one event per activity to an .ics file. Times are written as UTC
exactly as they appear in the plan.

With --save the alternative is also stored as a saved itinerary together
with the created event IDs.`,
	Args: cobra.ExactArgs(1),
	RunE: runCalendar,
}

func init() {
	calendarCmd.Flags().Int("alt", 1, "alternative to use (1 or 2)")
	calendarCmd.Flags().String("start", "", "trip start date, YYYY-MM-DD (default tomorrow)")
	calendarCmd.Flags().String("output", "", "output .ics path (default calendars/<request-id>-<alt>.ics)")
	calendarCmd.Flags().StringSlice("attendee", nil, "attendee email added to every event (repeatable)")
	calendarCmd.Flags().Bool("save", false, "save the alternative as an itinerary and record the events")
	calendarCmd.Flags().String("changes", "", "notes on changes made to the plan, stored with --save")

	viper.BindPFlag("calendar.attendees", calendarCmd.Flags().Lookup("attendee"))

	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()
	altID, _ := cmd.Flags().GetInt("alt")
	startFlag, _ := cmd.Flags().GetString("start")

	start, err := calendar.ParseStartDate(startFlag)
	if err != nil {
		return err
	}

	pf, alt, err := loadAlternative(args[0], altID)
	if err != nil {
		return err
	}

	res := itinerary.Parse(alt.Content)
	if len(res.Days) == 0 {
		printSkipped(res.Skipped)
		return fmt.Errorf("alternative %d of %s has no scheduled activities", alt.ID, pf.RequestID)
	}

	m := &calendar.Materializer{
		Now:       time.Now,
		Attendees: cfg.Calendar.Attendees,
		Logger:    slog.Default(),
	}
	specs, skipped := m.Materialize(res.Days, start)
	printSkipped(append(res.Skipped, skipped...))

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = filepath.Join(cfg.Calendar.OutputDir, fmt.Sprintf("%s-%d.ics", pf.RequestID, alt.ID))
	}

	ctx := context.Background()
	w := calendar.NewICSWriter(cfg.Calendar.ProductID)
	results, summary := calendar.Submit(ctx, w, specs, os.Stdout)

	if summary.Created > 0 {
		if err := w.WriteFile(output); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", output)
	}

	save, _ := cmd.Flags().GetBool("save")
	if save {
		changes, _ := cmd.Flags().GetString("changes")
		base := m.DefaultStartDate()
		if start != nil {
			base = *start
		}
		if err := saveSubmission(ctx, cfg.Store, pf, alt, res.Days, base, changes, results); err != nil {
			return err
		}
	}

	if summary.HasFailures() {
		return fmt.Errorf("%d event(s) failed", summary.Failed)
	}
	return nil
}

// saveSubmission stores alt as a saved itinerary running from base through
// its last day and records the submitted events against it.
func saveSubmission(ctx context.Context, cfg types.StoreConfig, pf types.PlanFile, alt types.PlanAlternative, days []types.ItineraryDay, base time.Time, changes string, results []types.EventResult) error {
	s, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	last := 1
	for _, d := range days {
		if d.DayNumber > last {
			last = d.DayNumber
		}
	}

	saved, err := s.SaveItinerary(ctx, types.SavedItinerary{
		UserID:      userID(),
		Query:       pf.Query,
		Changes:     changes,
		PlanID:      pf.RequestID,
		Alternative: alt.ID,
		Content:     alt.Content,
		StartDate:   base,
		EndDate:     base.AddDate(0, 0, last-1),
	})
	if err != nil {
		return err
	}
	if err := s.RecordSubmission(ctx, saved.ID, results); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "saved itinerary %s (%s, %s to %s)\n",
		saved.ID, saved.Destination, saved.StartDate.Format("2006-01-02"), saved.EndDate.Format("2006-01-02"))
	return nil
}
