// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package plan splits one generation response into exactly two plan
// alternatives.
//
// Three strategies are tried in order:
//
//  1. separator: a line holding only "---". Used when it leaves exactly two
//     non-empty segments.
//  2. marker: the first line that opens with a second-option phrase such as
//     "Option 2" or "## Alternative B". The marker line starts the second
//     segment.
//  3. midpoint: the text is cut in half by character count. This is a last
//     resort that ignores content; the second alternative may begin in the
//     middle of a day or an activity. Partition.Degraded reports it.
package plan

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/itinerary-engine/pkg/types"
)

const separatorLine = "---"

// secondOptionRe matches a line that opens a second alternative. Leading
// heading, emphasis, or quote markup is allowed before the phrase.
var secondOptionRe = regexp.MustCompile(
	`(?im)^[ \t#*_>]*(?:(?:option|plan|alternative|itinerary)\s*(?:2|two|b)\b|second\s+(?:option|plan|alternative|itinerary)\b)`,
)

// GenerationFormatError reports that no strategy produced two non-empty
// alternatives. It is surfaced to the caller rather than padded over.
type GenerationFormatError struct {
	Strategy types.PartitionStrategy
	Reason   string
}

func (e *GenerationFormatError) Error() string {
	return fmt.Sprintf("generation format: %s split: %s", e.Strategy, e.Reason)
}

// Split partitions text into two plan alternatives.
func Split(text string) (types.Partition, error) {
	if first, second, ok := splitOnSeparator(text); ok {
		return build(first, second, types.StrategySeparator)
	}
	if first, second, ok := splitOnMarker(text); ok {
		return build(first, second, types.StrategyMarker)
	}
	first, second := splitAtMidpoint(text)
	return build(first, second, types.StrategyMidpoint)
}

func build(first, second string, strategy types.PartitionStrategy) (types.Partition, error) {
	first = strings.TrimSpace(first)
	second = strings.TrimSpace(second)
	if first == "" || second == "" {
		return types.Partition{}, &GenerationFormatError{
			Strategy: strategy,
			Reason:   "produced an empty alternative",
		}
	}
	return types.Partition{
		Alternatives: [2]types.PlanAlternative{
			{ID: 1, Content: first, Kind: types.PlanItinerary},
			{ID: 2, Content: second, Kind: types.PlanItinerary},
		},
		Strategy: strategy,
	}, nil
}

// splitOnSeparator cuts text at every separator line and succeeds when
// exactly two non-empty segments remain.
func splitOnSeparator(text string) (string, string, bool) {
	var segments []string
	var current []string

	flush := func() {
		seg := strings.Join(current, "\n")
		if strings.TrimSpace(seg) != "" {
			segments = append(segments, seg)
		}
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == separatorLine {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	if len(segments) != 2 {
		return "", "", false
	}
	return segments[0], segments[1], true
}

// splitOnMarker cuts text at the first second-option marker line that has
// non-blank text before it. The marker stays at the head of the second
// segment so both alternatives keep their titles.
func splitOnMarker(text string) (string, string, bool) {
	for _, loc := range secondOptionRe.FindAllStringIndex(text, -1) {
		if strings.TrimSpace(text[:loc[0]]) == "" {
			continue
		}
		return text[:loc[0]], text[loc[0]:], true
	}
	return "", "", false
}

// splitAtMidpoint cuts text in half by rune count. The two halves
// concatenate back to text exactly.
func splitAtMidpoint(text string) (string, string) {
	runes := []rune(text)
	mid := len(runes) / 2
	return string(runes[:mid]), string(runes[mid:])
}
