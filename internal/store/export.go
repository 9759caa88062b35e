// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/itinerary-engine/pkg/types"
)

// ExportEntry is one saved itinerary with its calendar submissions.
type ExportEntry struct {
	types.SavedItinerary `yaml:",inline"`
	Submissions          []types.SubmissionRecord `yaml:"submissions,omitempty"`
}

// ExportYAML writes the user's itineraries (every user's when userID is
// empty) to dataDir/export.yaml and returns the path.
func (s *Store) ExportYAML(ctx context.Context, userID string) (string, error) {
	its, err := s.ListItineraries(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportEntry, len(its))
	for i, it := range its {
		subs, err := s.Submissions(ctx, it.ID)
		if err != nil {
			return "", err
		}
		entries[i] = ExportEntry{SavedItinerary: it, Submissions: subs}
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	path := filepath.Join(s.dataDir, "export.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}
