package responses

type DayAvailability struct {
	Day       string     `json:"day"`
	Intervals []Interval `json:"intervals"`
}
