// Package dateutil holds the calendar helpers shared by session scheduling
// and blackout matching. All values are date-only in the local calendar;
// wall-clock time never participates in scheduling decisions.
package dateutil

import (
	"regexp"
	"strings"
	"time"
)

// Layout is the canonical wire and storage format for dates.
const Layout = "2006-01-02"

var slashForm = regexp.MustCompile(`^(\d{2})[/-](\d{2})[/-](\d{4})$`)

var weekdayAbbr = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// ParseDateOnly accepts an ISO YYYY-MM-DD date or the legacy DD-MM-YYYY /
// DD/MM/YYYY forms and returns local midnight of that day. The second
// return is false when the input is not a valid date; callers must turn
// that into a client error rather than propagate a zero time.
func ParseDateOnly(value string) (time.Time, bool) {
	normalized := strings.TrimSpace(value)
	if normalized == "" {
		return time.Time{}, false
	}
	if m := slashForm.FindStringSubmatch(normalized); m != nil {
		normalized = m[3] + "-" + m[2] + "-" + m[1]
	}
	parsed, err := time.ParseInLocation(Layout, normalized, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// FormatDate renders a date back to YYYY-MM-DD using local calendar
// fields, round-trip stable with ParseDateOnly.
func FormatDate(date time.Time) string {
	return date.Format(Layout)
}

// DayMatches reports whether a free-form weekday label ("Mon", "monday")
// names the given weekday. Empty or unrecognized labels match everything:
// the absence of a day filter never excludes a row.
func DayMatches(label string, weekday time.Weekday) bool {
	key := strings.ToLower(strings.TrimSpace(label))
	if len(key) > 3 {
		key = key[:3]
	}
	day, ok := weekdayAbbr[key]
	if !ok {
		return true
	}
	return day == weekday
}
