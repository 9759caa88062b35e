// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the itinerary-engine CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/itinerary-engine/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the itinerary-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "itinerary-engine",
	Short: "Generate travel plans and turn them into calendar events",
	Long: `itinerary-engine asks a text-generation service for two alternative
travel plans, lets you preview either one as a day-by-day schedule, and
writes the chosen plan's activities to an iCalendar file.

Preferences and saved itineraries are kept in a local SQLite database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		s, err := secrets.Load(secrets.DefaultDir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./itinerary-engine.yaml or ~/.config/itinerary-engine/itinerary-engine.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log retry and parse diagnostics")
	rootCmd.PersistentFlags().String("data-dir", "", "directory holding the itinerary database (default data)")
	rootCmd.PersistentFlags().String("user", "", "traveller whose preferences and itineraries are used (default \"default\")")
	viper.BindPFlag("store.data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("itinerary-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "itinerary-engine"))
		}
	}

	setConfigDefaults()
	viper.SetEnvPrefix("ITINERARY_ENGINE")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
