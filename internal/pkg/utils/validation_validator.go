package utils

import (
	"clinichours-service/internal/pkg/datetime"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("day_date", validateDayDate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDayDate(fl validator.FieldLevel) bool {
	_, err := datetime.ParseDay(fl.Field().String())
	return err == nil
}
