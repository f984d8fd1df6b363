package datetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClockTime(t *testing.T) {
	t.Run("valid times", func(t *testing.T) {
		cases := map[string]int{
			"00:00": 0,
			"01:30": 90,
			"09:05": 545,
			"23:59": 1439,
		}
		for input, expected := range cases {
			parsed, err := ParseClockTime(input)
			assert.NoError(t, err, input)
			assert.Equal(t, ClockTime(expected), parsed, input)
		}
	})

	t.Run("invalid times", func(t *testing.T) {
		inputs := []string{
			"",
			"9:00",
			"09:0",
			"0900",
			"24:00",
			"12:60",
			"ab:cd",
			"12-30",
			"12:30:00",
			"+1:30",
			"13:+5",
			"-1:30",
			" 9:00",
		}
		for _, input := range inputs {
			_, err := ParseClockTime(input)
			assert.Error(t, err, input)
		}
	})

	t.Run("round trip through String", func(t *testing.T) {
		parsed, err := ParseClockTime("07:45")
		assert.NoError(t, err)
		assert.Equal(t, "07:45", parsed.String())
		assert.Equal(t, 7, parsed.Hour())
		assert.Equal(t, 45, parsed.Minute())
	})

	t.Run("Before is a strict ordering", func(t *testing.T) {
		early, _ := ParseClockTime("08:00")
		late, _ := ParseClockTime("08:01")
		assert.True(t, early.Before(late))
		assert.False(t, late.Before(early))
		assert.False(t, early.Before(early))
	})
}
