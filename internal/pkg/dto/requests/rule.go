package requests

// CreateRule carries the rule payload as submitted. week_days elements stay
// untyped so a non-integer element is reported as a week_days validation
// failure instead of a generic JSON decoding error.
type CreateRule struct {
	RuleType  string         `json:"rule_type" validate:"required"`
	Day       string         `json:"day,omitempty"`
	WeekDays  []interface{}  `json:"week_days,omitempty"`
	Intervals []RuleInterval `json:"intervals,omitempty"`
}

type RuleInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
