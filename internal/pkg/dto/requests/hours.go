package requests

type ListAvailableHours struct {
	Start string `validate:"required,day_date"`
	End   string `validate:"required,day_date"`
}
