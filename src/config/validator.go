package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
	Value   interface{}
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid config field '%s': %s", e.Field, e.Message)
}

// Validator validates configuration values using go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new configuration validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks a complete configuration, returning the first offending
// field as a ValidationError.
func (v *Validator) Validate(cfg *BotConfig) error {
	err := v.validate.Struct(cfg)
	if err == nil {
		return nil
	}
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			return ValidationError{
				Field:   e.Field(),
				Message: fmt.Sprintf("validation failed on tag '%s' with value '%v'", e.Tag(), e.Value()),
				Value:   e.Value(),
			}
		}
	}
	return err
}
