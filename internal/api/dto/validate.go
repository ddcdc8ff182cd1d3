package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate runs struct-tag validation and flattens failures into a
// field-to-reason map suitable for DomainError details.
func Validate(payload any) (map[string]any, bool) {
	err := validate.Struct(payload)
	if err == nil {
		return nil, true
	}
	details := map[string]any{}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			details[strings.ToLower(fe.Field())] = fe.Tag()
		}
	} else {
		details["payload"] = err.Error()
	}
	return details, false
}

// ValidEmail reports whether the value is a well-formed email address.
func ValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}
