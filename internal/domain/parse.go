package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidClock = errors.New("invalid time, expected HH:MM")

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int // 0..23
	Minute int // 0..59
}

// ParseClock parses strict "HH:MM" input such as "19:30" or "7:05".
// Seconds ("19:30:00"), out-of-range values and anything non-numeric
// are rejected.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return Clock{}, ErrInvalidClock
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return Clock{}, fmt.Errorf("%w: bad hour %q", ErrInvalidClock, parts[0])
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("%w: bad minute %q", ErrInvalidClock, parts[1])
	}
	return Clock{Hour: h, Minute: m}, nil
}

// String renders the clock as zero-padded "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ClockOf extracts the wall-clock time of t in its own location.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}
