package datetime

import (
	"fmt"
	"regexp"
	"time"
)

// DayLayout is the canonical wire format for calendar dates.
const DayLayout = "02-01-2006"

var dayPattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

// Day is a calendar date without a time-of-day component. The zero value is
// not a valid date; construct values through ParseDay or NewDay.
type Day struct {
	t time.Time
}

// ParseDay parses a strict "DD-MM-YYYY" string. The digit-count check keeps
// time.Parse from accepting unpadded inputs like "2-3-2019".
func ParseDay(s string) (Day, error) {
	if !dayPattern.MatchString(s) {
		return Day{}, fmt.Errorf("invalid day '%s': expected DD-MM-YYYY", s)
	}
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day '%s': %w", s, err)
	}
	return Day{t: t}, nil
}

func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Day) Equal(other Day) bool {
	return d.t.Equal(other.t)
}

func (d Day) Before(other Day) bool {
	return d.t.Before(other.t)
}

func (d Day) After(other Day) bool {
	return d.t.After(other.t)
}

func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// Weekday returns the weekday index with 0 = Sunday, the convention the
// rules API uses for week_days elements.
func (d Day) Weekday() int {
	return int(d.t.Weekday())
}

func (d Day) IsZero() bool {
	return d.t.IsZero()
}

// String renders the canonical "DD-MM-YYYY" form.
func (d Day) String() string {
	return d.t.Format(DayLayout)
}
