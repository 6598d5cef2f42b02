package http

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface so bound request bodies are checked declaratively via struct
// tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator for request DTOs.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
