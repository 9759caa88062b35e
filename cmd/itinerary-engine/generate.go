// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/itinerary-engine/internal/generate"
	"github.com/pdiddy/itinerary-engine/internal/plan"
	"github.com/pdiddy/itinerary-engine/internal/store"
	"github.com/pdiddy/itinerary-engine/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate [query...]",
	Short: "Ask for two alternative travel plans",
	Long: `Generate sends your request, together with your saved preferences, to
the generation service and splits the response into two plan alternatives.
The result is written to plans/<request-id>.yaml for preview and calendar.

Rate limits and connection failures are retried with exponential backoff.
A rejected request fails at once.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("agent", "auto", "specialist framing: auto, itinerary, activities, accommodation, budget, local_expert, seasonality_expert")
	generateCmd.Flags().String("model", "", "AI model identifier")
	generateCmd.Flags().String("plans-dir", "", "directory for plan files (default plans)")
	generateCmd.Flags().Int("max-attempts", 0, "total generation attempts before giving up (default 5)")
	generateCmd.Flags().Bool("show", false, "print both alternatives after generating")

	viper.BindPFlag("generation.model", generateCmd.Flags().Lookup("model"))
	viper.BindPFlag("generation.plans_dir", generateCmd.Flags().Lookup("plans-dir"))
	viper.BindPFlag("generation.retry.max_attempts", generateCmd.Flags().Lookup("max-attempts"))

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("provide a travel request, e.g. \"3 days in Lisbon in May\"")
	}

	cfg := pipelineConfig()
	if cfg.Generation.APIKey == "" {
		return fmt.Errorf("no API key: set ANTHROPIC_API_KEY or write .secrets/anthropic-api-key")
	}

	agentName, _ := cmd.Flags().GetString("agent")
	agent, err := selectAgent(agentName, query)
	if err != nil {
		return err
	}

	ctx := context.Background()
	prefs, err := loadPreferences(ctx, cfg.Store)
	if err != nil {
		return err
	}

	backend := &generate.ClaudeBackend{
		APIKey:    cfg.Generation.APIKey,
		Model:     cfg.Generation.Model,
		MaxTokens: cfg.Generation.MaxTokens,
		UserAgent: cfg.Generation.UserAgent,
		Client:    &http.Client{Timeout: cfg.Generation.Timeout},
	}
	orch := generate.NewOrchestrator(backend, cfg.Generation.Retry,
		generate.WithLimiter(generate.NewSharedLimiter(cfg.Generation.Retry.RequestsPerMinute)))

	fmt.Fprintf(os.Stdout, "asking %s agent (%s)\n", agent.Role, cfg.Generation.Model)
	pf, _, err := plan.Run(ctx, orch, generate.Request{
		Query:       query,
		Preferences: prefs,
		Agent:       agent,
	}, cfg.Generation.PlansDir, time.Now(), os.Stdout)
	if err != nil {
		return err
	}

	show, _ := cmd.Flags().GetBool("show")
	if show {
		for _, alt := range pf.Alternatives {
			fmt.Fprintf(os.Stdout, "\n=== Alternative %d ===\n%s\n", alt.ID, alt.Content)
		}
	}
	fmt.Fprintf(os.Stdout, "\nnext: itinerary-engine preview %s --alt 1\n", pf.RequestID)
	return nil
}

// selectAgent resolves the --agent flag. "auto" routes by keywords in query.
func selectAgent(name, query string) (generate.Agent, error) {
	reg := generate.NewRegistry()
	if name == "" || name == "auto" {
		return reg.BestFor(query), nil
	}
	agent, ok := reg.Get(generate.Role(name))
	if !ok || agent.Role == generate.RolePreferenceAnalyzer {
		return generate.Agent{}, fmt.Errorf("unknown agent %q", name)
	}
	return agent, nil
}

// loadPreferences returns the current user's stored preferences, or none.
func loadPreferences(ctx context.Context, cfg types.StoreConfig) (types.Preferences, error) {
	s, err := store.Open(cfg)
	if err != nil {
		return types.Preferences{}, err
	}
	defer s.Close()

	prefs, _, err := s.GetPreferences(ctx, userID())
	return prefs, err
}
