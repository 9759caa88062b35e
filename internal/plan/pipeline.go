// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/itinerary-engine/internal/generate"
	"github.com/pdiddy/itinerary-engine/pkg/types"
)

// Generator produces raw plan text for a request. *generate.Orchestrator
// implements it.
type Generator interface {
	Generate(ctx context.Context, req generate.Request) (types.GenerationResult, error)
}

// Run generates a response for req, splits it into two alternatives, and
// writes the plan file under plansDir. Progress lines go to w.
func Run(ctx context.Context, gen Generator, req generate.Request, plansDir string, now time.Time, w io.Writer) (types.PlanFile, string, error) {
	res, err := gen.Generate(ctx, req)
	if err != nil {
		return types.PlanFile{}, "", err
	}
	fmt.Fprintf(w, "generated %s (%d attempt(s))\n", res.RequestID, res.Attempts)

	part, err := Split(res.Text)
	if err != nil {
		return types.PlanFile{}, "", fmt.Errorf("request %s: %w", res.RequestID, err)
	}
	if part.Degraded() {
		fmt.Fprintf(w, "warning: no separator or second-option marker found, split %s at midpoint\n", res.RequestID)
	}

	pf := types.PlanFile{
		RequestID:    res.RequestID,
		Query:        req.Query,
		Agent:        string(req.Agent.Role),
		GeneratedAt:  now.UTC(),
		Strategy:     part.Strategy,
		Alternatives: part.Alternatives[:],
	}
	path, err := WriteFile(plansDir, pf)
	if err != nil {
		return pf, "", err
	}
	fmt.Fprintf(w, "wrote %s (%s split)\n", path, part.Strategy)
	return pf, path, nil
}
