package datetime

import (
	"fmt"
	"regexp"
	"strconv"
)

var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// ClockTime is a time of day stored as minutes since midnight, which makes
// interval ordering and overlap checks plain integer comparisons.
type ClockTime int

// ParseClockTime parses a strict 24-hour "HH:mm" string. Single-digit hours
// or minutes are rejected, matching the wire format of the rules API.
func ParseClockTime(s string) (ClockTime, error) {
	if !clockPattern.MatchString(s) {
		return 0, fmt.Errorf("invalid clock time '%s': expected HH:mm", s)
	}
	hour, _ := strconv.Atoi(s[:2])
	minute, _ := strconv.Atoi(s[3:])
	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("invalid clock time '%s': out of range", s)
	}
	return ClockTime(hour*60 + minute), nil
}

func (c ClockTime) Hour() int {
	return int(c) / 60
}

func (c ClockTime) Minute() int {
	return int(c) % 60
}

func (c ClockTime) Before(other ClockTime) bool {
	return c < other
}

// String renders the canonical "HH:mm" form.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}
