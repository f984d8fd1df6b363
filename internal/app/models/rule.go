package models

import (
	"clinichours-service/internal/pkg/datetime"
	"clinichours-service/internal/pkg/dto/responses"
)

type RuleType string

const (
	RuleTypeOneDay RuleType = "ONE_DAY"
	RuleTypeDaily  RuleType = "DAILY"
	RuleTypeWeekly RuleType = "WEEKLY"
)

// Interval is a half-open time-of-day span [Start, End) within a single day.
type Interval struct {
	Start datetime.ClockTime
	End   datetime.ClockTime
}

// Overlaps reports whether two half-open intervals share any time.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Rule is an availability rule as produced by validation. Day is meaningful
// only for ONE_DAY rules and WeekDays only for WEEKLY rules; the validator
// guarantees the variant-specific field is populated, so consumers switch on
// RuleType without re-checking field presence.
type Rule struct {
	ID        string
	RuleType  RuleType
	Day       datetime.Day
	WeekDays  []int
	Intervals []Interval
}

// ActiveOnWeekday reports whether a WEEKLY rule's week_days set covers the
// given weekday index (0 = Sunday).
func (r *Rule) ActiveOnWeekday(weekday int) bool {
	for _, d := range r.WeekDays {
		if d == weekday {
			return true
		}
	}
	return false
}

func (r *Rule) ConvertIntoResponse() *responses.Rule {
	response := &responses.Rule{
		ID:        r.ID,
		RuleType:  string(r.RuleType),
		Intervals: ConvertIntervalsIntoResponse(r.Intervals),
	}
	switch r.RuleType {
	case RuleTypeOneDay:
		response.Day = r.Day.String()
	case RuleTypeWeekly:
		response.WeekDays = r.WeekDays
	}
	return response
}

func ConvertIntervalsIntoResponse(intervals []Interval) []responses.Interval {
	converted := make([]responses.Interval, 0, len(intervals))
	for _, interval := range intervals {
		converted = append(converted, responses.Interval{
			Start: interval.Start.String(),
			End:   interval.End.String(),
		})
	}
	return converted
}
