// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys from a directory of plain-text files. The
// filename is the key name and the trimmed file contents are the value.
//
// Known keys: anthropic-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is the secrets directory relative to the working directory.
const DefaultDir = ".secrets/"

// AnthropicAPIKey names the file holding the generation service key.
const AnthropicAPIKey = "anthropic-api-key"

// Load reads every regular, non-hidden file in dir. A missing directory is
// not an error and yields an empty map. Unreadable files are reported on
// stderr and skipped.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	out := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			out[name] = value
		}
	}
	return out, nil
}

// EnvName returns the environment variable consulted for key:
// "anthropic-api-key" becomes "ANTHROPIC_API_KEY".
func EnvName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// Resolve picks the value for key. An explicit value wins, then the
// environment variable named by EnvName, then the loaded secret file.
func Resolve(loaded map[string]string, key, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if v := strings.TrimSpace(os.Getenv(EnvName(key))); v != "" {
		return v
	}
	return loaded[key]
}
