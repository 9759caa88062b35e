// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/itinerary-engine/internal/store"
	"github.com/pdiddy/itinerary-engine/pkg/types"
)

var itinerariesCmd = &cobra.Command{
	Use:   "itineraries",
	Short: "Manage saved itineraries (list, save, archive, export)",
}

var itinerariesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved itineraries, newest first",
	RunE:  runItinerariesList,
}

var itinerariesSaveCmd = &cobra.Command{
	Use:   "save <plan>",
	Short: "Save a plan alternative without writing a calendar",
	Long: `Save stores the chosen alternative for the current user. The
destination is taken from the original request ("trip to Lisbon") and the
dates from explicit dates in the plan, or from its number of days.`,
	Args: cobra.ExactArgs(1),
	RunE: runItinerariesSave,
}

var itinerariesArchiveCmd = &cobra.Command{
	Use:   "archive <id>",
	Short: "Mark a saved itinerary as archived",
	Args:  cobra.ExactArgs(1),
	RunE:  runItinerariesArchive,
}

var itinerariesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved itineraries and their calendar events to YAML",
	RunE:  runItinerariesExport,
}

func init() {
	itinerariesListCmd.Flags().Bool("all", false, "list every user's itineraries")
	itinerariesListCmd.Flags().Bool("json", false, "output results as JSON")

	itinerariesSaveCmd.Flags().Int("alt", 1, "alternative to save (1 or 2)")
	itinerariesSaveCmd.Flags().String("changes", "", "notes on changes made to the plan")

	itinerariesExportCmd.Flags().Bool("all", false, "export every user's itineraries")

	itinerariesCmd.AddCommand(itinerariesListCmd)
	itinerariesCmd.AddCommand(itinerariesSaveCmd)
	itinerariesCmd.AddCommand(itinerariesArchiveCmd)
	itinerariesCmd.AddCommand(itinerariesExportCmd)
	rootCmd.AddCommand(itinerariesCmd)
}

func runItinerariesList(cmd *cobra.Command, args []string) error {
	s, err := store.Open(pipelineConfig().Store)
	if err != nil {
		return err
	}
	defer s.Close()

	all, _ := cmd.Flags().GetBool("all")
	user := userID()
	if all {
		user = ""
	}
	its, err := s.ListItineraries(context.Background(), user)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(its)
	}
	return formatItineraries(its)
}

func formatItineraries(its []types.SavedItinerary) error {
	if len(its) == 0 {
		fmt.Println("No saved itineraries.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-10s  %-10s  %-10s  %s\n",
		"ID", "Destination", "Start", "End", "Status", "User")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 104))

	for _, it := range its {
		dest := it.Destination
		if len(dest) > 20 {
			dest = dest[:17] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-10s  %-10s  %-10s  %s\n",
			it.ID, dest, it.StartDate.Format("2006-01-02"), it.EndDate.Format("2006-01-02"),
			it.Status, it.UserID)
	}

	fmt.Fprintf(os.Stdout, "\n%d itineraries\n", len(its))
	return nil
}

func runItinerariesSave(cmd *cobra.Command, args []string) error {
	altID, _ := cmd.Flags().GetInt("alt")
	changes, _ := cmd.Flags().GetString("changes")

	pf, alt, err := loadAlternative(args[0], altID)
	if err != nil {
		return err
	}

	s, err := store.Open(pipelineConfig().Store)
	if err != nil {
		return err
	}
	defer s.Close()

	saved, err := s.SaveItinerary(context.Background(), types.SavedItinerary{
		UserID:      userID(),
		Query:       pf.Query,
		Changes:     changes,
		PlanID:      pf.RequestID,
		Alternative: alt.ID,
		Content:     alt.Content,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "saved itinerary %s (%s, %s to %s)\n",
		saved.ID, saved.Destination, saved.StartDate.Format("2006-01-02"), saved.EndDate.Format("2006-01-02"))
	return nil
}

func runItinerariesArchive(cmd *cobra.Command, args []string) error {
	s, err := store.Open(pipelineConfig().Store)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.SetStatus(context.Background(), args[0], types.StatusArchived); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "archived %s\n", args[0])
	return nil
}

func runItinerariesExport(cmd *cobra.Command, args []string) error {
	s, err := store.Open(pipelineConfig().Store)
	if err != nil {
		return err
	}
	defer s.Close()

	all, _ := cmd.Flags().GetBool("all")
	user := userID()
	if all {
		user = ""
	}
	path, err := s.ExportYAML(context.Background(), user)
	if err != nil {
		return err
	}
	fmt.Printf("Exported to %s\n", path)
	return nil
}
