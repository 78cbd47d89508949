/*
clock.go - Wall-clock time and calendar-date arithmetic

PURPOSE:
  Parses "HH:mm" time strings and "YYYY-MM-DD" date strings and computes
  shift durations. This is the only place the string formats are interpreted.

CONTRACT:
  Duration never returns a negative value. A malformed or reversed interval
  silently yields 0 rather than failing - callers must not rely on these
  functions to validate input (that happens at the authoring boundary,
  see validate.go).
*/
package schedule

import (
	"fmt"
	"time"
)

const minutesPerHour = 60

// =============================================================================
// CLOCK TIME ("HH:mm")
// =============================================================================

// MinuteOfDay parses an "HH:mm" string into minutes since midnight.
// Returns ok=false for anything that does not parse.
func MinuteOfDay(clock string) (int, bool) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, false
	}
	return t.Hour()*minutesPerHour + t.Minute(), true
}

// DurationMinutes returns the raw interval length in minutes, clamped to 0
// for reversed or malformed intervals.
func DurationMinutes(start, end string) int {
	s, okS := MinuteOfDay(start)
	e, okE := MinuteOfDay(end)
	if !okS || !okE || e <= s {
		return 0
	}
	return e - s
}

// Duration returns the interval length as fractional hours. Never negative.
func Duration(start, end string) float64 {
	return float64(DurationMinutes(start, end)) / minutesPerHour
}

// PaidMinutes is DurationMinutes with the break deducted, clamped to 0.
// Break deduction is applied here so that the pay path and the hours-only
// path agree (one authoritative computation, no preview-only variant).
func PaidMinutes(start, end string, breakMinutes int) int {
	m := DurationMinutes(start, end) - breakMinutes
	if m < 0 {
		return 0
	}
	return m
}

// PaidHours returns the break-deducted interval as fractional hours.
func PaidHours(start, end string, breakMinutes int) float64 {
	return float64(PaidMinutes(start, end, breakMinutes)) / minutesPerHour
}

// =============================================================================
// CALENDAR DATE ("YYYY-MM-DD")
// =============================================================================

// ParseDate parses a calendar date string. ok=false on malformed input.
func ParseDate(date string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a calendar date string.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// InMonth reports whether a date string falls in the given calendar month.
// Matching is by "YYYY-MM" prefix; malformed dates never match.
func InMonth(date string, year int, month time.Month) bool {
	if len(date) < 7 {
		return false
	}
	return date[:7] == fmt.Sprintf("%04d-%02d", year, int(month))
}
