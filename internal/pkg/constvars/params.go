package constvars

const (
	URLParamRuleID = "rule_id"
)

const (
	URLQueryParamStart = "start"
	URLQueryParamEnd   = "end"
)
