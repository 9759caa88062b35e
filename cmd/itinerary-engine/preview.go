// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/itinerary-engine/internal/calendar"
	"github.com/pdiddy/itinerary-engine/internal/itinerary"
	"github.com/pdiddy/itinerary-engine/internal/plan"
	"github.com/pdiddy/itinerary-engine/pkg/types"
)

var previewCmd = &cobra.Command{
	Use:   "preview <plan>",
	Short: "Show one plan alternative as a day-by-day schedule",
	Long: `Preview parses the chosen alternative of a generated plan and lists
each day's activities with start time, location, and duration. <plan> is a
request ID from generate or a path to a plan file.

Lines that look like activities but cannot be used are listed at the end.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("alt", 1, "alternative to preview (1 or 2)")
	previewCmd.Flags().Bool("json", false, "output entries as JSON")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	alt, _ := cmd.Flags().GetInt("alt")
	_, chosen, err := loadAlternative(args[0], alt)
	if err != nil {
		return err
	}

	res := itinerary.Parse(chosen.Content)
	entries := calendar.Preview(res.Days)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No activities found.")
	}

	day := 0
	for _, e := range entries {
		if e.DayNumber != day {
			day = e.DayNumber
			fmt.Fprintf(os.Stdout, "\nDay %d: %s\n", e.DayNumber, e.DayTitle)
		}
		location := e.Location
		if location == "" {
			location = "-"
		}
		fmt.Fprintf(os.Stdout, "  %s  %-40s  %-24s  %s\n", e.StartTime, e.Description, location, e.Duration)
	}

	printSkipped(res.Skipped)
	fmt.Fprintf(os.Stdout, "\n%d days, %d activities\n", len(res.Days), res.ActivityCount())
	return nil
}

// loadAlternative reads the plan file named by ref and returns the
// alternative with the given ID.
func loadAlternative(ref string, id int) (types.PlanFile, types.PlanAlternative, error) {
	path := plan.ResolvePath(pipelineConfig().Generation.PlansDir, ref)
	pf, err := plan.ReadFile(path)
	if err != nil {
		return types.PlanFile{}, types.PlanAlternative{}, err
	}
	alt, err := plan.Select(pf, id)
	if err != nil {
		return pf, types.PlanAlternative{}, err
	}
	if pf.Strategy == types.StrategyMidpoint {
		fmt.Fprintf(os.Stderr, "warning: plan %s was split at its midpoint; alternatives may be cut mid-day\n", pf.RequestID)
	}
	return pf, alt, nil
}

func printSkipped(skipped []types.SkippedLine) {
	if len(skipped) == 0 {
		return
	}
	fmt.Fprintf(os.Stdout, "\nskipped %d line(s):\n", len(skipped))
	for _, s := range skipped {
		if s.Line > 0 {
			fmt.Fprintf(os.Stdout, "  line %d: %s (%s)\n", s.Line, s.Text, s.Reason)
			continue
		}
		fmt.Fprintf(os.Stdout, "  %s (%s)\n", s.Text, s.Reason)
	}
}
