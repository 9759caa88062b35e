// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/itinerary-engine/pkg/types"
)

const planExt = ".yaml"

// WriteFile writes pf to dir/<request_id>.yaml and returns the path.
func WriteFile(dir string, pf types.PlanFile) (string, error) {
	if pf.RequestID == "" {
		return "", fmt.Errorf("plan file has no request id")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating plans directory: %w", err)
	}

	data, err := yaml.Marshal(pf)
	if err != nil {
		return "", fmt.Errorf("marshaling plan file: %w", err)
	}
	path := filepath.Join(dir, pf.RequestID+planExt)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing plan file: %w", err)
	}
	return path, nil
}

// ReadFile loads a plan file written by WriteFile.
func ReadFile(path string) (types.PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.PlanFile{}, fmt.Errorf("reading plan file: %w", err)
	}
	var pf types.PlanFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return types.PlanFile{}, fmt.Errorf("parsing plan file %s: %w", path, err)
	}
	return pf, nil
}

// ResolvePath turns a plan reference into a file path. A reference that
// names an existing file or ends in .yaml is used as given; anything else
// is treated as a request ID under dir.
func ResolvePath(dir, ref string) string {
	if strings.HasSuffix(ref, planExt) {
		return ref
	}
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return ref
	}
	return filepath.Join(dir, ref+planExt)
}

// Select returns the alternative with the given 1-based ID.
func Select(pf types.PlanFile, id int) (types.PlanAlternative, error) {
	for _, alt := range pf.Alternatives {
		if alt.ID == id {
			return alt, nil
		}
	}
	return types.PlanAlternative{}, fmt.Errorf("plan %s has no alternative %d", pf.RequestID, id)
}
