package rules

import (
	"testing"
	"time"

	"clinichours-service/internal/app/models"
	"clinichours-service/internal/pkg/datetime"

	"github.com/stretchr/testify/assert"
)

func mustInterval(t *testing.T, start, end string) models.Interval {
	t.Helper()
	s, err := datetime.ParseClockTime(start)
	assert.NoError(t, err)
	e, err := datetime.ParseClockTime(end)
	assert.NoError(t, err)
	return models.Interval{Start: s, End: e}
}

func oneDayRule(t *testing.T, day datetime.Day, intervals ...models.Interval) models.Rule {
	t.Helper()
	return models.Rule{RuleType: models.RuleTypeOneDay, Day: day, Intervals: intervals}
}

func dailyRule(t *testing.T, intervals ...models.Interval) models.Rule {
	t.Helper()
	return models.Rule{RuleType: models.RuleTypeDaily, Intervals: intervals}
}

func weeklyRule(t *testing.T, weekDays []int, intervals ...models.Interval) models.Rule {
	t.Helper()
	return models.Rule{RuleType: models.RuleTypeWeekly, WeekDays: weekDays, Intervals: intervals}
}

func TestIntervalOverlapSemantics(t *testing.T) {
	t.Run("adjacent intervals do not overlap", func(t *testing.T) {
		a := mustInterval(t, "09:00", "10:00")
		b := mustInterval(t, "10:00", "11:00")
		assert.False(t, a.Overlaps(b))
		assert.False(t, b.Overlaps(a))
	})

	t.Run("partial overlap is symmetric", func(t *testing.T) {
		a := mustInterval(t, "09:00", "10:30")
		b := mustInterval(t, "10:00", "11:00")
		assert.True(t, a.Overlaps(b))
		assert.True(t, b.Overlaps(a))
	})

	t.Run("containment overlaps", func(t *testing.T) {
		outer := mustInterval(t, "08:00", "12:00")
		inner := mustInterval(t, "09:00", "10:00")
		assert.True(t, outer.Overlaps(inner))
		assert.True(t, inner.Overlaps(outer))
	})
}

func TestFindConflict_DayDecisionTable(t *testing.T) {
	// 28-03-2019 was a Thursday (weekday 4).
	thursday := datetime.NewDay(2019, time.March, 28)
	friday := thursday.AddDays(1)
	overlapping := mustInterval(t, "09:00", "10:00")

	t.Run("daily conflicts with every kind", func(t *testing.T) {
		candidate := dailyRule(t, overlapping)
		stored := []models.Rule{
			{ID: "one-day", RuleType: models.RuleTypeOneDay, Day: thursday, Intervals: []models.Interval{overlapping}},
		}
		assert.NotNil(t, FindConflict(&candidate, stored))

		stored = []models.Rule{
			{ID: "weekly", RuleType: models.RuleTypeWeekly, WeekDays: []int{2}, Intervals: []models.Interval{overlapping}},
		}
		assert.NotNil(t, FindConflict(&candidate, stored))

		stored = []models.Rule{
			{ID: "daily", RuleType: models.RuleTypeDaily, Intervals: []models.Interval{overlapping}},
		}
		assert.NotNil(t, FindConflict(&candidate, stored))
	})

	t.Run("one day rules conflict only on the same date", func(t *testing.T) {
		candidate := oneDayRule(t, thursday, overlapping)

		sameDay := []models.Rule{oneDayRule(t, thursday, overlapping)}
		assert.NotNil(t, FindConflict(&candidate, sameDay))

		otherDay := []models.Rule{oneDayRule(t, friday, overlapping)}
		assert.Nil(t, FindConflict(&candidate, otherDay))
	})

	t.Run("weekly vs one day uses weekday membership", func(t *testing.T) {
		candidate := weeklyRule(t, []int{4}, overlapping)

		matching := []models.Rule{oneDayRule(t, thursday, overlapping)}
		assert.NotNil(t, FindConflict(&candidate, matching))

		nonMatching := []models.Rule{oneDayRule(t, friday, overlapping)}
		assert.Nil(t, FindConflict(&candidate, nonMatching))
	})

	t.Run("weekly rules conflict on intersecting weekday sets", func(t *testing.T) {
		candidate := weeklyRule(t, []int{1, 3, 5}, overlapping)

		intersecting := []models.Rule{weeklyRule(t, []int{3}, overlapping)}
		assert.NotNil(t, FindConflict(&candidate, intersecting))

		disjoint := []models.Rule{weeklyRule(t, []int{0, 2, 6}, overlapping)}
		assert.Nil(t, FindConflict(&candidate, disjoint))
	})

	t.Run("weekly against single date on an uncovered weekday", func(t *testing.T) {
		// Candidate covers Mon, Wed, Fri; the stored rule sits on a Tuesday.
		tuesday := datetime.NewDay(2019, time.March, 26)
		candidate := weeklyRule(t, []int{1, 3, 5}, overlapping)
		stored := []models.Rule{oneDayRule(t, tuesday, overlapping)}
		assert.Nil(t, FindConflict(&candidate, stored))
	})
}

func TestFindConflict_IntervalGate(t *testing.T) {
	thursday := datetime.NewDay(2019, time.March, 28)

	t.Run("shared day without overlapping intervals is no conflict", func(t *testing.T) {
		candidate := oneDayRule(t, thursday, mustInterval(t, "09:00", "10:00"))
		stored := []models.Rule{oneDayRule(t, thursday, mustInterval(t, "10:00", "11:00"))}
		assert.Nil(t, FindConflict(&candidate, stored))
	})

	t.Run("any overlapping pair across interval lists conflicts", func(t *testing.T) {
		candidate := dailyRule(t,
			mustInterval(t, "01:00", "02:00"),
			mustInterval(t, "14:30", "15:00"),
		)
		stored := []models.Rule{
			{
				ID:       "stored",
				RuleType: models.RuleTypeDaily,
				Intervals: []models.Interval{
					mustInterval(t, "05:00", "06:00"),
					mustInterval(t, "14:00", "16:00"),
				},
			},
		}
		conflict := FindConflict(&candidate, stored)
		assert.NotNil(t, conflict)
		assert.Equal(t, "stored", conflict.ID)
	})

	t.Run("first conflicting stored rule wins", func(t *testing.T) {
		candidate := dailyRule(t, mustInterval(t, "09:00", "10:00"))
		stored := []models.Rule{
			{ID: "clean", RuleType: models.RuleTypeDaily, Intervals: []models.Interval{mustInterval(t, "11:00", "12:00")}},
			{ID: "first", RuleType: models.RuleTypeDaily, Intervals: []models.Interval{mustInterval(t, "09:30", "10:30")}},
			{ID: "second", RuleType: models.RuleTypeDaily, Intervals: []models.Interval{mustInterval(t, "09:00", "09:15")}},
		}
		conflict := FindConflict(&candidate, stored)
		assert.NotNil(t, conflict)
		assert.Equal(t, "first", conflict.ID)
	})

	t.Run("empty store never conflicts", func(t *testing.T) {
		candidate := dailyRule(t, mustInterval(t, "09:00", "10:00"))
		assert.Nil(t, FindConflict(&candidate, nil))
	})
}
