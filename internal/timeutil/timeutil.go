package timeutil

import (
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// UpstreamDateTimeLayout is the naive timestamp stats.nba.com uses for dates.
const UpstreamDateTimeLayout = "2006-01-02T15:04:05"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// ParseUpstreamDate parses an upstream date-plus-time string and discards the time of day.
// A bare YYYY-MM-DD value is accepted as well.
func ParseUpstreamDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if len(value) == len(DateLayout) {
		return ParseDate(value)
	}
	parsed, err := time.Parse(UpstreamDateTimeLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := parsed.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// ResolveLocation returns a location for a tz name, or nil if empty or invalid.
func ResolveLocation(tz string) *time.Location {
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil
	}
	return loc
}
