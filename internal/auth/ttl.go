package auth

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultTokenTTL is used whenever the configured lifetime cannot be parsed.
const DefaultTokenTTL = time.Hour

var ttlPattern = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*(ms|msecs?|milliseconds?|s|secs?|seconds?|m|mins?|minutes?|h|hrs?|hours?|d|days?|w|wks?|weeks?|y|yrs?|years?)$`)

// ParseTTL parses "<number><unit>" lifetimes such as "90s", "30m", "1.5h", "7d" or "1y".
func ParseTTL(value string) (time.Duration, error) {
	match := ttlPattern.FindStringSubmatch(strings.TrimSpace(value))
	if match == nil {
		return 0, fmt.Errorf("invalid duration %q", value)
	}

	amount, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", value, err)
	}

	unit := unitDuration(strings.ToLower(match[2]))
	nanos := amount * float64(unit)
	if nanos >= math.MaxInt64 {
		return 0, fmt.Errorf("duration %q is out of range", value)
	}
	ttl := time.Duration(nanos)
	if ttl <= 0 {
		return 0, fmt.Errorf("duration %q must be positive", value)
	}
	return ttl, nil
}

func unitDuration(unit string) time.Duration {
	const day = 24 * time.Hour
	switch unit {
	case "ms", "msec", "msecs", "millisecond", "milliseconds":
		return time.Millisecond
	case "s", "sec", "secs", "second", "seconds":
		return time.Second
	case "m", "min", "mins", "minute", "minutes":
		return time.Minute
	case "h", "hr", "hrs", "hour", "hours":
		return time.Hour
	case "d", "day", "days":
		return day
	case "w", "wk", "wks", "week", "weeks":
		return 7 * day
	default: // years
		return time.Duration(365.25 * float64(day))
	}
}
