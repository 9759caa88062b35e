// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"sort"
	"strings"
)

// Preferences holds a traveller's stored planning preferences. The pipeline
// treats them as opaque prompt context.
type Preferences struct {
	// Budget is a coarse budget level such as "budget", "moderate", "luxury".
	Budget string `json:"budget,omitempty" yaml:"budget,omitempty"`

	// TravelStyle is a free-form style label (e.g. "relaxed", "adventurous").
	TravelStyle string `json:"travel_style,omitempty" yaml:"travel_style,omitempty"`

	// Extra carries any other key/value preferences.
	Extra map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// IsEmpty reports whether no preference is set.
func (p Preferences) IsEmpty() bool {
	return p.Budget == "" && p.TravelStyle == "" && len(p.Extra) == 0
}

// PromptContext renders the preferences as sorted "key: value" lines.
func (p Preferences) PromptContext() string {
	fields := make(map[string]string, len(p.Extra)+2)
	for k, v := range p.Extra {
		fields[k] = v
	}
	if p.Budget != "" {
		fields["budget"] = p.Budget
	}
	if p.TravelStyle != "" {
		fields["travel_style"] = p.TravelStyle
	}
	if len(fields) == 0 {
		return "none"
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: %s", k, fields[k])
	}
	return b.String()
}
