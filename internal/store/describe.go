// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// UnknownDestination is recorded when no destination phrase is found.
const UnknownDestination = "Unknown"

const defaultTripDays = 7

var (
	destinationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)trip to ([A-Za-z\s]+)`),
		regexp.MustCompile(`(?i)travel to ([A-Za-z\s]+)`),
		regexp.MustCompile(`(?i)vacation in ([A-Za-z\s]+)`),
		regexp.MustCompile(`(?i)visiting ([A-Za-z\s]+)`),
		regexp.MustCompile(`(?i)holiday in ([A-Za-z\s]+)`),
		regexp.MustCompile(`(?i)going to ([A-Za-z\s]+)`),
	}

	explicitDateRe = regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{4}|\d{4}-\d{2}-\d{2})\b`)
	dayNumberRe    = regexp.MustCompile(`(?i)\bday\s+(\d+)`)
)

// Words that end a destination phrase ("trip to Lisbon for a week").
var destinationStopWords = map[string]bool{
	"for": true, "with": true, "during": true, "next": true, "this": true,
	"from": true, "on": true, "in": true, "and": true, "over": true, "at": true,
}

// ExtractDestination finds a destination in a traveller's query using
// phrases such as "trip to X" or "vacation in X" and returns it title-cased.
// It returns UnknownDestination when no phrase matches.
func ExtractDestination(query string) string {
	for _, re := range destinationPatterns {
		m := re.FindStringSubmatch(query)
		if m == nil {
			continue
		}
		var words []string
		for _, w := range strings.Fields(m[1]) {
			if destinationStopWords[strings.ToLower(w)] {
				break
			}
			words = append(words, titleWord(w))
		}
		if len(words) > 0 {
			return strings.Join(words, " ")
		}
	}
	return UnknownDestination
}

func titleWord(w string) string {
	lower := strings.ToLower(w)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// EstimateDateRange derives a trip's date range from its itinerary text.
// Explicit dates (YYYY-MM-DD or M/D/YYYY) give the earliest and latest
// date. Otherwise the range starts at now and spans the highest "Day N"
// mentioned, or seven days when there is none. Dates are returned at UTC
// midnight.
func EstimateDateRange(content string, now time.Time) (start, end time.Time) {
	var found []time.Time
	for _, m := range explicitDateRe.FindAllString(content, -1) {
		layout := "1/2/2006"
		if strings.Contains(m, "-") {
			layout = dateLayout
		}
		t, err := time.Parse(layout, m)
		if err != nil {
			continue
		}
		found = append(found, t)
	}
	if len(found) > 0 {
		start, end = found[0], found[0]
		for _, t := range found[1:] {
			if t.Before(start) {
				start = t
			}
			if t.After(end) {
				end = t
			}
		}
		return start, end
	}

	days := 0
	for _, m := range dayNumberRe.FindAllStringSubmatch(content, -1) {
		n, err := strconv.Atoi(m[1])
		if err == nil && n > days {
			days = n
		}
	}
	if days == 0 {
		days = defaultTripDays
	}

	start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, days)
}
