package constvars

const (
	CreateRuleSuccessMessage         = "Successfully created rule"
	ListRulesSuccessMessage          = "Successfully listed rules"
	FindRuleSuccessMessage           = "Successfully found rule"
	DeleteRuleSuccessMessageFormat   = "Rule %s was deleted successfully."
	ListAvailableHoursSuccessMessage = "Successfully listed available hours"
)
