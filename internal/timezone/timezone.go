// Package timezone provides timezone utilities for eventsense.
//
// This package handles zone parsing and UTC offset formatting so the
// extraction pipeline can anchor prompts and validate model output
// consistently regardless of the caller's zone.
package timezone

import (
	"time"

	"github.com/pkg/errors"
)

// FallbackOffset is used when no zone can be resolved at all.
const FallbackOffset = "-06:00"

// ParseTimezone parses an IANA timezone identifier (e.g., "America/Chicago").
// If the identifier is invalid, returns the host's local zone and an error.
func ParseTimezone(tz string) (*time.Location, error) {
	if tz == "" {
		return time.Local, nil
	}
	if tz == "UTC" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Local, errors.Wrapf(err, "invalid timezone %q", tz)
	}
	return loc, nil
}

// IsValidTimezone checks if a timezone identifier is valid.
func IsValidTimezone(tz string) bool {
	if tz == "" || tz == "UTC" {
		return true
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// NowInTimezone returns the current time in the given zone.
func NowInTimezone(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Now().In(loc)
}

// OffsetString formats the UTC offset of t's zone as a signed "±HH:MM"
// string, e.g. "-05:00" for CDT or "+05:30" for Asia/Kolkata.
func OffsetString(t time.Time) string {
	return t.Format("-07:00")
}

// StartOfDay returns the start of the day (00:00:00) of t in the given zone.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}
