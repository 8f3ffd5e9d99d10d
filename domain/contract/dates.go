package contract

import (
	"strings"
	"time"
)

// dayFirstLayouts are tried in order. Ambiguous all-numeric dates sit
// first with the day component before the month, so "03/04/2025" parses
// as 3 April 2025. Unambiguous ISO and long-form layouts follow. To run
// a month-first deployment, reorder the ambiguous entries.
var dayFirstLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2/1/06",
	"2-1-06",
	"2006-01-02",
	"2006/01/02",
	"2 January 2006",
	"2 Jan 2006",
	"2-Jan-2006",
	"January 2, 2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDayFirst attempts to parse a calendar date with day-before-month
// preference for ambiguous forms. The boolean result distinguishes the
// parsed and raw-fallback branches; failure to parse is an expected
// outcome, not an error.
func ParseDayFirst(value string) (time.Time, bool) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return time.Time{}, false
	}

	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// FormatDate renders a parsed date as "<day> <full month name> <year>",
// e.g. "15 December 2025". The day carries no leading zero.
func FormatDate(t time.Time) string {
	return t.Format("2 January 2006")
}
