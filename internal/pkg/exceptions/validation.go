package exceptions

import (
	"strings"

	"clinichours-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		fieldName := strings.ToLower(firstErr.Field())
		switch firstErr.Tag() {
		case "required":
			return fieldName + " is required"
		case "day_date":
			return fieldName + " must be a date in 'DD-MM-YYYY' format"
		default:
			return fieldName + " is invalid"
		}
	}
	return constvars.ErrClientCannotProcessRequest
}
