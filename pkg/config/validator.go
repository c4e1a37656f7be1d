package config

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators registers custom validation functions
func RegisterCustomValidators(v *validator.Validate) error {
	return v.RegisterValidation("regexp", validateRegexp)
}

// validateRegexp accepts strings that compile as regular expressions
func validateRegexp(fl validator.FieldLevel) bool {
	pattern := fl.Field().String()
	if pattern == "" {
		return false
	}
	_, err := regexp.Compile(pattern)
	return err == nil
}
