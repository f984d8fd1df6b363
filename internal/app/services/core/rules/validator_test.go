package rules

import (
	"testing"
	"time"

	"clinichours-service/internal/app/models"
	"clinichours-service/internal/pkg/constvars"
	"clinichours-service/internal/pkg/datetime"
	"clinichours-service/internal/pkg/dto/requests"
	"clinichours-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func assertClientMessage(t *testing.T, err error, expected string) {
	t.Helper()
	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	if assert.True(t, ok, "expected a CustomError, got %T", err) {
		assert.Equal(t, expected, customErr.ClientMessage)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	}
}

func validIntervals() []requests.RuleInterval {
	return []requests.RuleInterval{{Start: "09:00", End: "10:00"}}
}

func TestBuildRuleFromRequest_OneDay(t *testing.T) {
	rule, err := BuildRuleFromRequest(&requests.CreateRule{
		RuleType:  "ONE_DAY",
		Day:       "28-03-2019",
		Intervals: validIntervals(),
	})
	assert.NoError(t, err)
	assert.Equal(t, models.RuleTypeOneDay, rule.RuleType)
	assert.Equal(t, datetime.NewDay(2019, time.March, 28), rule.Day)
	assert.Len(t, rule.Intervals, 1)
	assert.Equal(t, "09:00", rule.Intervals[0].Start.String())
	assert.Equal(t, "10:00", rule.Intervals[0].End.String())
}

func TestBuildRuleFromRequest_Daily(t *testing.T) {
	rule, err := BuildRuleFromRequest(&requests.CreateRule{
		RuleType:  "DAILY",
		Intervals: validIntervals(),
	})
	assert.NoError(t, err)
	assert.Equal(t, models.RuleTypeDaily, rule.RuleType)
	assert.True(t, rule.Day.IsZero())
	assert.Empty(t, rule.WeekDays)
}

func TestBuildRuleFromRequest_Weekly(t *testing.T) {
	t.Run("numeric elements", func(t *testing.T) {
		rule, err := BuildRuleFromRequest(&requests.CreateRule{
			RuleType:  "WEEKLY",
			WeekDays:  []interface{}{float64(1), float64(3), float64(5)},
			Intervals: validIntervals(),
		})
		assert.NoError(t, err)
		assert.Equal(t, models.RuleTypeWeekly, rule.RuleType)
		assert.Equal(t, []int{1, 3, 5}, rule.WeekDays)
	})

	t.Run("numeric string elements", func(t *testing.T) {
		rule, err := BuildRuleFromRequest(&requests.CreateRule{
			RuleType:  "WEEKLY",
			WeekDays:  []interface{}{"0", "6"},
			Intervals: validIntervals(),
		})
		assert.NoError(t, err)
		assert.Equal(t, []int{0, 6}, rule.WeekDays)
	})
}

func TestBuildRuleFromRequest_Rejections(t *testing.T) {
	t.Run("unknown rule_type", func(t *testing.T) {
		_, err := BuildRuleFromRequest(&requests.CreateRule{
			RuleType:  "MONTHLY",
			Intervals: validIntervals(),
		})
		assertClientMessage(t, err, constvars.ErrClientInvalidRuleType)
	})

	t.Run("one day with malformed day", func(t *testing.T) {
		for _, day := range []string{"", "2019-03-28", "32-01-2019", "2-3-2019"} {
			_, err := BuildRuleFromRequest(&requests.CreateRule{
				RuleType:  "ONE_DAY",
				Day:       day,
				Intervals: validIntervals(),
			})
			assertClientMessage(t, err, constvars.ErrClientInvalidDay)
		}
	})

	t.Run("weekly with missing week_days", func(t *testing.T) {
		_, err := BuildRuleFromRequest(&requests.CreateRule{
			RuleType:  "WEEKLY",
			Intervals: validIntervals(),
		})
		assertClientMessage(t, err, constvars.ErrClientInvalidWeekDaysType)
	})

	t.Run("weekly with invalid week_days elements", func(t *testing.T) {
		badElements := []interface{}{
			"monday",
			float64(7),
			float64(-1),
			float64(1.5),
			true,
			nil,
		}
		for _, element := range badElements {
			_, err := BuildRuleFromRequest(&requests.CreateRule{
				RuleType:  "WEEKLY",
				WeekDays:  []interface{}{element},
				Intervals: validIntervals(),
			})
			assertClientMessage(t, err, constvars.ErrClientInvalidWeekDaysElement)
		}
	})

	t.Run("missing intervals", func(t *testing.T) {
		_, err := BuildRuleFromRequest(&requests.CreateRule{
			RuleType: "DAILY",
		})
		assertClientMessage(t, err, constvars.ErrClientInvalidIntervalsType)
	})

	t.Run("malformed interval times", func(t *testing.T) {
		badIntervals := [][]requests.RuleInterval{
			{{Start: "9:00", End: "10:00"}},
			{{Start: "09:00", End: "25:00"}},
			{{Start: "09:00", End: ""}},
			{{Start: "10:00", End: "09:00"}},
			{{Start: "09:00", End: "09:00"}},
		}
		for _, intervals := range badIntervals {
			_, err := BuildRuleFromRequest(&requests.CreateRule{
				RuleType:  "DAILY",
				Intervals: intervals,
			})
			assertClientMessage(t, err, constvars.ErrClientInvalidTime)
		}
	})

	t.Run("rule_type is checked before day", func(t *testing.T) {
		_, err := BuildRuleFromRequest(&requests.CreateRule{
			RuleType:  "BOGUS",
			Day:       "not-a-day",
			Intervals: []requests.RuleInterval{{Start: "bad", End: "worse"}},
		})
		assertClientMessage(t, err, constvars.ErrClientInvalidRuleType)
	})

	t.Run("day is checked before intervals", func(t *testing.T) {
		_, err := BuildRuleFromRequest(&requests.CreateRule{
			RuleType: "ONE_DAY",
			Day:      "not-a-day",
		})
		assertClientMessage(t, err, constvars.ErrClientInvalidDay)
	})
}
