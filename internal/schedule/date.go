package schedule

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseEventDate reads a client supplied date ("YYYY-MM-DD" or RFC 3339) as a calendar
// date and returns midnight of that date in loc. The offset of an RFC 3339 value only
// selects the calendar day, it is not converted.
func ParseEventDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	value = strings.TrimSpace(value)

	if t, err := time.ParseInLocation(dateLayout, value, loc); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidSchedule, value)
	}
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc), nil
}

// FormatDate renders t as "YYYY-MM-DD" in loc.
func FormatDate(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(dateLayout)
}
