// Package dates handles the YYYY-MM-DD day strings used throughout the
// tracker. Dates are compared as strings, never parsed into time zones.
package dates

import (
	"regexp"
	"time"
)

// DayFormat is the layout for day strings.
const DayFormat = "2006-01-02"

var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Today returns the current system-local date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format(DayFormat)
}

// Ensure returns input when it is a well-formed YYYY-MM-DD string and
// today's date otherwise. Malformed input falls back silently, it is
// not a validation error.
func Ensure(input string) string {
	if dayPattern.MatchString(input) {
		return input
	}
	return Today()
}

// Valid reports whether input is a well-formed YYYY-MM-DD string.
func Valid(input string) bool {
	return dayPattern.MatchString(input)
}
