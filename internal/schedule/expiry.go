// Package schedule derives the purge instant of dated records.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RetentionAfterEnd is how long an event stays visible after it ends.
const RetentionAfterEnd = 12 * time.Hour

// ErrInvalidSchedule reports a date or time-of-day that cannot be interpreted.
var ErrInvalidSchedule = errors.New("invalid schedule")

// ComputeDeleteAt returns the instant an event held on date and ending at endTime
// ("HH:MM") must be purged. Without endTime the event ends at 23:59:59.999 of date.
// The calendar day and zone are taken from date as-is.
func ComputeDeleteAt(date time.Time, endTime *string) (time.Time, error) {
	year, month, day := date.Date()
	loc := date.Location()

	end := time.Date(year, month, day, 23, 59, 59, int(999*time.Millisecond), loc)
	if endTime != nil && strings.TrimSpace(*endTime) != "" {
		hour, minute, err := ParseClock(*endTime)
		if err != nil {
			return time.Time{}, err
		}
		end = time.Date(year, month, day, hour, minute, 0, 0, loc)
	}

	return end.Add(RetentionAfterEnd), nil
}

// ParseClock parses an "HH:MM" time of day. Single digit hours are accepted.
func ParseClock(value string) (hour, minute int, err error) {
	value = strings.TrimSpace(value)
	h, m, ok := strings.Cut(value, ":")
	if !ok || !isDigits(h, 1, 2) || !isDigits(m, 2, 2) {
		return 0, 0, fmt.Errorf("%w: time %q is not HH:MM", ErrInvalidSchedule, value)
	}

	hour, _ = strconv.Atoi(h)
	minute, _ = strconv.Atoi(m)
	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: time %q out of range", ErrInvalidSchedule, value)
	}
	return hour, minute, nil
}

func isDigits(s string, minLen, maxLen int) bool {
	if len(s) < minLen || len(s) > maxLen {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
