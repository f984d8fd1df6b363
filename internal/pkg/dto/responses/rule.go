package responses

type Rule struct {
	ID        string     `json:"id"`
	RuleType  string     `json:"rule_type"`
	Day       string     `json:"day,omitempty"`
	WeekDays  []int      `json:"week_days,omitempty"`
	Intervals []Interval `json:"intervals"`
}

type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
