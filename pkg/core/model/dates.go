package model

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates throughout the app
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string into a UTC date
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// Overlaps reports whether the entry's closed [start, end] interval
// intersects the closed [from, to] interval. Entries with unparseable
// dates never overlap anything.
func (e *Entry) Overlaps(from, to time.Time) bool {
	start, err := e.StartDate()
	if err != nil {
		return false
	}
	end, err := e.EndDate()
	if err != nil {
		return false
	}
	return !start.After(to) && !end.Before(from)
}

// Contains reports whether the given day falls within the entry's
// closed [start, end] interval
func (e *Entry) Contains(day time.Time) bool {
	return e.Overlaps(day, day)
}
