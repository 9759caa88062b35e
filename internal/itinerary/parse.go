// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package itinerary parses the markdown-like plan text returned by the
// generation service into days and timed activities.
//
// The accepted grammar is small:
//
//	## Day <n>: <title>
//	- HH:MM[am|pm] <description> **<location>** (<n> hours|minutes)
//
// Anything else is ignored. Parsing never fails as a whole; lines that
// cannot be used are dropped and reported in Result.Skipped.
package itinerary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/itinerary-engine/pkg/types"
)

var (
	// dayHeaderRe matches "## Day 3: Coastal Hike" at any heading level from
	// two hashes down. The word "Day" is case-insensitive.
	dayHeaderRe = regexp.MustCompile(`^#{2,}\s*(?i:day)\s*(\d+)\s*:\s*(.*\S)\s*$`)

	// clockTokenRe matches the first H:MM or HH:MM token on a line, with an
	// optional am/pm suffix written with or without a space.
	clockTokenRe = regexp.MustCompile(`\b(\d{1,2}):(\d{2})(?:\s*((?i:am|pm)))?\b`)
)

const bulletMarker = "-"

// Result is the output of Parse.
type Result struct {
	Days    []types.ItineraryDay
	Skipped []types.SkippedLine
}

// ActivityCount returns the number of activities across all days.
func (r Result) ActivityCount() int {
	n := 0
	for _, d := range r.Days {
		n += len(d.Activities)
	}
	return n
}

// ActivityParseWarning describes an activity that was recognized but cannot
// be placed on a calendar. It is recovered locally: the activity is dropped
// and processing continues.
type ActivityParseWarning struct {
	DayNumber int
	Time      types.ClockTime
	Reason    string
}

func (w *ActivityParseWarning) Error() string {
	return fmt.Sprintf("day %d activity at %s: %s", w.DayNumber, w.Time, w.Reason)
}

// ValidateActivity reports an *ActivityParseWarning when the activity's
// clock time is out of range or its duration is not positive or longer
// than types.MaxActivityMinutes.
func ValidateActivity(dayNumber int, a types.Activity) error {
	if !a.Time.Valid() {
		return &ActivityParseWarning{DayNumber: dayNumber, Time: a.Time, Reason: "time out of range"}
	}
	if a.DurationMinutes <= 0 {
		return &ActivityParseWarning{DayNumber: dayNumber, Time: a.Time, Reason: "duration must be positive"}
	}
	if a.DurationMinutes > types.MaxActivityMinutes {
		return &ActivityParseWarning{DayNumber: dayNumber, Time: a.Time, Reason: "duration too long"}
	}
	return nil
}

// ParseDayHeader recognizes a day header line and returns its number and
// trimmed title.
func ParseDayHeader(line string) (int, string, bool) {
	m := dayHeaderRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return 0, "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", false
	}
	return n, strings.TrimSpace(m[2]), true
}

// MatchActivity recognizes a bulleted line containing a clock token and
// returns the parsed activity. Bulleted lines without a clock token, and
// non-bulleted lines, return ok=false.
//
// The clock token is taken as written apart from an am/pm suffix, which
// converts hours 1-12 to the 24-hour clock (12am is 00, 1pm is 13). Range
// checking is left to ValidateActivity so that callers decide how to
// report it.
func MatchActivity(line string) (types.Activity, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, bulletMarker) {
		return types.Activity{}, false
	}
	body := strings.TrimSpace(strings.TrimPrefix(trimmed, bulletMarker))

	m := clockTokenRe.FindStringSubmatchIndex(body)
	if m == nil {
		return types.Activity{}, false
	}
	hour, _ := strconv.Atoi(body[m[2]:m[3]])
	minute, _ := strconv.Atoi(body[m[4]:m[5]])
	if m[6] >= 0 {
		hour = to24Hour(hour, body[m[6]:m[7]])
	}

	rest := body[:m[0]] + " " + body[m[1]:]
	rest = strings.TrimLeft(strings.TrimSpace(rest), "-:| ")

	desc, loc, minutes := ExtractDetails(rest)
	return types.Activity{
		Time:            types.ClockTime{Hour: hour, Minute: minute},
		Description:     desc,
		Location:        loc,
		DurationMinutes: minutes,
	}, true
}

// to24Hour applies an am/pm suffix to hour. Hours outside 1-12 are left as
// written so that ValidateActivity still sees them.
func to24Hour(hour int, suffix string) int {
	if hour < 1 || hour > 12 {
		return hour
	}
	pm := strings.EqualFold(suffix, "pm")
	switch {
	case hour == 12 && !pm:
		return 0
	case hour < 12 && pm:
		return hour + 12
	}
	return hour
}

// Parse splits plan text into itinerary days.
//
// A day header opens a new day; the previous day is kept only if at least
// one activity was recorded under it. Activity lines seen before the first
// header, or under a header whose day number is zero, are reported in
// Result.Skipped. Day numbers are otherwise taken as written and keep
// first-seen order.
func Parse(content string) Result {
	var res Result
	var current *types.ItineraryDay
	discarding := false

	flush := func() {
		if current != nil && len(current.Activities) > 0 {
			res.Days = append(res.Days, *current)
		}
		current = nil
	}

	for i, raw := range strings.Split(content, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if line == "" {
			continue
		}

		if n, title, ok := ParseDayHeader(line); ok {
			flush()
			if n <= 0 {
				discarding = true
				res.Skipped = append(res.Skipped, types.SkippedLine{
					Line: lineNo, Text: line, Reason: "day number must be positive",
				})
				continue
			}
			discarding = false
			current = &types.ItineraryDay{DayNumber: n, Title: title}
			continue
		}

		act, ok := MatchActivity(line)
		if !ok {
			continue
		}
		switch {
		case discarding:
			res.Skipped = append(res.Skipped, types.SkippedLine{
				Line: lineNo, Text: line, Reason: "activity under invalid day header",
			})
		case current == nil:
			res.Skipped = append(res.Skipped, types.SkippedLine{
				Line: lineNo, Text: line, Reason: "activity before first day header",
			})
		default:
			current.Activities = append(current.Activities, act)
		}
	}

	flush()
	return res
}

// ParseDays is Parse without the skip report.
func ParseDays(content string) []types.ItineraryDay {
	return Parse(content).Days
}
