// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates bound request structs.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their json names.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			name, _, _ = strings.Cut(field.Tag.Get("form"), ",")
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

// FieldErrors flattens validation errors into field name -> failed rule.
func FieldErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields[fieldErr.Field()] = fieldErr.Tag()
	}

	return fields
}
