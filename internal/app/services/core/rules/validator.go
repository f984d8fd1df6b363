package rules

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"clinichours-service/internal/app/models"
	"clinichours-service/internal/pkg/datetime"
	"clinichours-service/internal/pkg/dto/requests"
	"clinichours-service/internal/pkg/exceptions"
)

// BuildRuleFromRequest validates a candidate rule payload and produces the
// typed rule, without an id. Checks run in a fixed order and stop at the
// first failure so every malformed-input class maps to exactly one error:
// rule_type, then the type-specific field (day or week_days), then intervals.
// Interval starts must precede their ends; an empty or inverted interval can
// never contribute availability, so it is rejected as an invalid time.
func BuildRuleFromRequest(request *requests.CreateRule) (*models.Rule, error) {
	rule := &models.Rule{}

	switch models.RuleType(request.RuleType) {
	case models.RuleTypeOneDay:
		day, err := datetime.ParseDay(request.Day)
		if err != nil {
			return nil, exceptions.ErrInvalidDay(err)
		}
		rule.RuleType = models.RuleTypeOneDay
		rule.Day = day

	case models.RuleTypeDaily:
		rule.RuleType = models.RuleTypeDaily

	case models.RuleTypeWeekly:
		if len(request.WeekDays) == 0 {
			return nil, exceptions.ErrInvalidWeekDaysType(nil)
		}
		weekDays := make([]int, 0, len(request.WeekDays))
		for _, element := range request.WeekDays {
			weekDay, ok := weekDayFromPayload(element)
			if !ok {
				return nil, exceptions.ErrInvalidWeekDaysElement(fmt.Errorf("invalid week_days element %v", element))
			}
			weekDays = append(weekDays, weekDay)
		}
		rule.RuleType = models.RuleTypeWeekly
		rule.WeekDays = weekDays

	default:
		return nil, exceptions.ErrInvalidRuleType(fmt.Errorf("unknown rule_type '%s'", request.RuleType))
	}

	if len(request.Intervals) == 0 {
		return nil, exceptions.ErrInvalidIntervalsType(nil)
	}
	intervals := make([]models.Interval, 0, len(request.Intervals))
	for _, element := range request.Intervals {
		start, err := datetime.ParseClockTime(element.Start)
		if err != nil {
			return nil, exceptions.ErrInvalidTime(err)
		}
		end, err := datetime.ParseClockTime(element.End)
		if err != nil {
			return nil, exceptions.ErrInvalidTime(err)
		}
		if !start.Before(end) {
			return nil, exceptions.ErrInvalidTime(fmt.Errorf("interval start %s is not before end %s", start, end))
		}
		intervals = append(intervals, models.Interval{Start: start, End: end})
	}
	rule.Intervals = intervals

	return rule, nil
}

// weekDayFromPayload accepts the shapes JSON decoding can deliver for a
// week_days element: a whole number, or a numeric string like "3".
func weekDayFromPayload(element interface{}) (int, bool) {
	var weekDay int
	switch v := element.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		weekDay = int(v)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		weekDay = parsed
	default:
		return 0, false
	}
	if weekDay < 0 || weekDay > 6 {
		return 0, false
	}
	return weekDay, true
}
