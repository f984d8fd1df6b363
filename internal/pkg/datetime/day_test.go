package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDay(t *testing.T) {
	t.Run("valid dates", func(t *testing.T) {
		parsed, err := ParseDay("28-03-2019")
		assert.NoError(t, err)
		assert.Equal(t, NewDay(2019, time.March, 28), parsed)
		assert.Equal(t, "28-03-2019", parsed.String())
	})

	t.Run("invalid dates", func(t *testing.T) {
		inputs := []string{
			"",
			"2-3-2019",
			"28/03/2019",
			"2019-03-28",
			"32-01-2019",
			"29-02-2019",
			"00-01-2019",
			"15-13-2019",
			"aa-bb-cccc",
		}
		for _, input := range inputs {
			_, err := ParseDay(input)
			assert.Error(t, err, input)
		}
	})
}

func TestDayOrdering(t *testing.T) {
	earlier := NewDay(2019, time.March, 26)
	later := NewDay(2019, time.March, 29)

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.Equal(later))
	assert.True(t, earlier.Equal(NewDay(2019, time.March, 26)))
}

func TestDayAddDays(t *testing.T) {
	day := NewDay(2019, time.March, 31)
	assert.Equal(t, NewDay(2019, time.April, 1), day.AddDays(1))
	assert.Equal(t, NewDay(2019, time.March, 26), day.AddDays(-5))
}

func TestDayWeekday(t *testing.T) {
	// 24-03-2019 was a Sunday.
	sunday := NewDay(2019, time.March, 24)
	for offset := 0; offset < 7; offset++ {
		assert.Equal(t, offset, sunday.AddDays(offset).Weekday())
	}
}
