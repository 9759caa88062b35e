// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package itinerary

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/itinerary-engine/pkg/types"
)

var (
	// boldSpanRe matches a **bold** span; the first one on a line is the
	// activity's location.
	boldSpanRe = regexp.MustCompile(`\*\*([^*]+)\*\*`)

	// durationSpanRe matches "(2 hours)", "(1 hour)", "(45 min)", "(30 minutes)".
	durationSpanRe = regexp.MustCompile(`(?i)\(\s*(\d+)\s*(hours?|minutes?|mins?)\s*\)`)

	// parenSpanRe matches any remaining parenthetical aside.
	parenSpanRe = regexp.MustCompile(`\([^)]*\)`)

	spaceRunRe = regexp.MustCompile(`\s+`)
)

// span is a half-open byte range [start, end) of the original text.
type span struct {
	start, end int
}

// ExtractDetails pulls the location and duration markup out of one activity
// line (the text after the bullet and time token) and returns the cleaned
// description.
//
// Only the first bold span is the location; any later bold spans are left
// in the description as written. Only the first duration span counts; a
// missing, zero or overlong duration yields types.DefaultActivityMinutes. Both
// patterns are located on the original text and removed together, so a
// location that contains parentheses cannot shift the duration match.
func ExtractDetails(text string) (description, location string, minutes int) {
	minutes = types.DefaultActivityMinutes
	var cuts []span

	if m := boldSpanRe.FindStringSubmatchIndex(text); m != nil {
		location = strings.TrimSpace(text[m[2]:m[3]])
		cuts = append(cuts, span{m[0], m[1]})
	}

	if m := durationSpanRe.FindStringSubmatchIndex(text); m != nil {
		if n, ok := durationMinutes(text[m[2]:m[3]], text[m[4]:m[5]]); ok {
			minutes = n
			cuts = append(cuts, span{m[0], m[1]})
		}
	}

	working := removeSpans(text, cuts)
	working = parenSpanRe.ReplaceAllString(working, " ")
	working = spaceRunRe.ReplaceAllString(working, " ")
	return strings.TrimSpace(working), location, minutes
}

// durationMinutes converts a matched amount and unit word to minutes. Zero
// and anything above types.MaxActivityMinutes report ok=false.
func durationMinutes(amount, unit string) (int, bool) {
	n, err := strconv.Atoi(amount)
	if err != nil || n <= 0 {
		return 0, false
	}
	if strings.HasPrefix(strings.ToLower(unit), "hour") {
		if n > types.MaxActivityMinutes/60 {
			return 0, false
		}
		n *= 60
	}
	if n > types.MaxActivityMinutes {
		return 0, false
	}
	return n, true
}

// removeSpans deletes the given byte ranges from text. Overlapping ranges
// are merged first; each removed range is replaced by one space so the
// surrounding words stay apart.
func removeSpans(text string, cuts []span) string {
	if len(cuts) == 0 {
		return text
	}
	sort.Slice(cuts, func(i, j int) bool { return cuts[i].start < cuts[j].start })

	merged := []span{cuts[0]}
	for _, c := range cuts[1:] {
		last := &merged[len(merged)-1]
		if c.start <= last.end {
			if c.end > last.end {
				last.end = c.end
			}
			continue
		}
		merged = append(merged, c)
	}

	var b strings.Builder
	prev := 0
	for _, c := range merged {
		b.WriteString(text[prev:c.start])
		b.WriteByte(' ')
		prev = c.end
	}
	b.WriteString(text[prev:])
	return b.String()
}
