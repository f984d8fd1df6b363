package rules

import (
	"clinichours-service/internal/app/models"
)

// FindConflict returns the first stored rule that both shares an active day
// with the candidate and has at least one overlapping interval, or nil when
// the candidate is safe to store. The candidate carries no id yet.
func FindConflict(candidate *models.Rule, existing []models.Rule) *models.Rule {
	for i := range existing {
		stored := &existing[i]
		if shareActiveDay(stored, candidate) && intervalsOverlap(stored.Intervals, candidate.Intervals) {
			return stored
		}
	}
	return nil
}

// shareActiveDay decides whether two rules can ever be active on the same
// calendar date, independent of their intervals. The cross product of the
// three rule kinds reduces to: DAILY overlaps everything, two ONE_DAY rules
// need the same date, and WEEKLY rules need a matching weekday.
func shareActiveDay(a, b *models.Rule) bool {
	if a.RuleType == models.RuleTypeDaily || b.RuleType == models.RuleTypeDaily {
		return true
	}

	switch a.RuleType {
	case models.RuleTypeOneDay:
		if b.RuleType == models.RuleTypeOneDay {
			return a.Day.Equal(b.Day)
		}
		return b.ActiveOnWeekday(a.Day.Weekday())

	case models.RuleTypeWeekly:
		if b.RuleType == models.RuleTypeOneDay {
			return a.ActiveOnWeekday(b.Day.Weekday())
		}
		for _, weekday := range b.WeekDays {
			if a.ActiveOnWeekday(weekday) {
				return true
			}
		}
	}
	return false
}

// intervalsOverlap reports whether any pair across the two interval lists
// overlaps under half-open [start, end) semantics.
func intervalsOverlap(a, b []models.Interval) bool {
	for _, left := range a {
		for _, right := range b {
			if left.Overlaps(right) {
				return true
			}
		}
	}
	return false
}
