package hours

import (
	"sort"

	"clinichours-service/internal/app/models"
	"clinichours-service/internal/pkg/datetime"
)

// ExpandAvailableHours projects the rule set onto every calendar day from
// rangeStart through rangeEnd, both boundaries included. A day appears in the
// result only when at least one rule is active on it. Intervals from
// different rules are concatenated as-is, never merged, and sorted by start
// time with end time as the tie breaker.
func ExpandAvailableHours(rangeStart, rangeEnd datetime.Day, rules []models.Rule) []models.DayAvailability {
	intervalsByDay := make(map[string][]models.Interval)
	var orderedDays []datetime.Day

	appendIntervals := func(day datetime.Day, intervals []models.Interval) {
		key := day.String()
		if _, seen := intervalsByDay[key]; !seen {
			orderedDays = append(orderedDays, day)
		}
		intervalsByDay[key] = append(intervalsByDay[key], intervals...)
	}

	for i := range rules {
		rule := &rules[i]
		switch rule.RuleType {
		case models.RuleTypeOneDay:
			if !rule.Day.Before(rangeStart) && !rule.Day.After(rangeEnd) {
				appendIntervals(rule.Day, rule.Intervals)
			}
		case models.RuleTypeDaily:
			for day := rangeStart; !day.After(rangeEnd); day = day.AddDays(1) {
				appendIntervals(day, rule.Intervals)
			}
		case models.RuleTypeWeekly:
			for day := rangeStart; !day.After(rangeEnd); day = day.AddDays(1) {
				if rule.ActiveOnWeekday(day.Weekday()) {
					appendIntervals(day, rule.Intervals)
				}
			}
		}
	}

	sort.Slice(orderedDays, func(i, j int) bool {
		return orderedDays[i].Before(orderedDays[j])
	})

	availability := make([]models.DayAvailability, 0, len(orderedDays))
	for _, day := range orderedDays {
		intervals := intervalsByDay[day.String()]
		sort.SliceStable(intervals, func(i, j int) bool {
			if intervals[i].Start != intervals[j].Start {
				return intervals[i].Start < intervals[j].Start
			}
			return intervals[i].End < intervals[j].End
		})
		availability = append(availability, models.DayAvailability{
			Day:       day,
			Intervals: intervals,
		})
	}
	return availability
}
