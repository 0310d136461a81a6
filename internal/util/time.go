package util

import (
	"time"

	"go.uber.org/zap"
)

// DateLayout is the calendar date format used in cache keys and commands.
const DateLayout = "2006-01-02"

// LoadLocation resolves an IANA zone name, falling back to UTC.
func LoadLocation(name string, logger *zap.Logger) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		if logger != nil {
			logger.Warn("Unknown timezone, using UTC", zap.String("timezone", name), zap.Error(err))
		}
		return time.UTC
	}
	return loc
}

// CalendarDate returns the calendar day of t in loc as midnight UTC, so the
// scoring core sees the user's local date.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateKey formats the calendar day of t in loc.
func DateKey(t time.Time, loc *time.Location) string {
	return CalendarDate(t, loc).Format(DateLayout)
}

// AtHour returns hour:00 on the calendar day of t in loc.
func AtHour(t time.Time, loc *time.Location, hour int) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, loc)
}
