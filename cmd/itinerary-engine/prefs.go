// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/itinerary-engine/internal/store"
	"github.com/pdiddy/itinerary-engine/pkg/types"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage travel preferences used as context for generation",
}

var prefsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save preferences for the current user",
	Long: `Set replaces the stored preferences for --user. Budget and style are
free-form labels; --extra adds any other key=value pair.`,
	RunE: runPrefsSet,
}

var prefsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the stored preferences for the current user",
	RunE:  runPrefsGet,
}

func init() {
	prefsSetCmd.Flags().String("budget", "", "budget level, e.g. budget, moderate, luxury")
	prefsSetCmd.Flags().String("style", "", "travel style, e.g. relaxed, adventurous")
	prefsSetCmd.Flags().StringArray("extra", nil, "additional preference as key=value (repeatable)")

	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsGetCmd)
	rootCmd.AddCommand(prefsCmd)
}

func runPrefsSet(cmd *cobra.Command, args []string) error {
	budget, _ := cmd.Flags().GetString("budget")
	style, _ := cmd.Flags().GetString("style")
	extras, _ := cmd.Flags().GetStringArray("extra")

	prefs := types.Preferences{Budget: budget, TravelStyle: style}
	for _, kv := range extras {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return fmt.Errorf("invalid --extra %q: want key=value", kv)
		}
		if prefs.Extra == nil {
			prefs.Extra = make(map[string]string)
		}
		prefs.Extra[k] = strings.TrimSpace(v)
	}
	if prefs.IsEmpty() {
		return fmt.Errorf("nothing to save: pass --budget, --style, or --extra")
	}

	s, err := store.Open(pipelineConfig().Store)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.SavePreferences(context.Background(), userID(), prefs); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "saved preferences for %s\n", userID())
	return nil
}

func runPrefsGet(cmd *cobra.Command, args []string) error {
	s, err := store.Open(pipelineConfig().Store)
	if err != nil {
		return err
	}
	defer s.Close()

	prefs, ok, err := s.GetPreferences(context.Background(), userID())
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(os.Stdout, "no preferences saved for %s\n", userID())
		return nil
	}

	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}
	fmt.Fprint(os.Stdout, string(data))
	return nil
}
