package dto

import (
	"fmt"
	"time"
)

// DateFormat is the wire format for calendar dates.
const DateFormat = "2006-01-02"

// TimestampFormat is the wire format for audit timestamps.
const TimestampFormat = "2006-01-02 15:04:05"

// ParseDate parses a wire date into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}
