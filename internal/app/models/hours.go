package models

import (
	"clinichours-service/internal/pkg/datetime"
	"clinichours-service/internal/pkg/dto/responses"
)

// DayAvailability pairs one calendar date with every interval contributed by
// the rules active on that date. Query-time value only, never persisted.
type DayAvailability struct {
	Day       datetime.Day
	Intervals []Interval
}

func (d *DayAvailability) ConvertIntoResponse() responses.DayAvailability {
	return responses.DayAvailability{
		Day:       d.Day.String(),
		Intervals: ConvertIntervalsIntoResponse(d.Intervals),
	}
}
