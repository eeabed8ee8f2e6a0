package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// StructFields validates a struct against its `validate` tags and returns a
// field name to message mapping wrapped in an error, or nil.
func StructFields(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var invalidValidationError *validator.InvalidValidationError
	if errors.As(err, &invalidValidationError) {
		return err
	}

	fieldErrors := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			fieldErrors[fieldError.Field()] = messageForTag(fieldError)
		}
	}

	return &FieldErrors{Fields: fieldErrors}
}

// FieldErrors carries per field validation messages.
type FieldErrors struct {
	Fields map[string]string
}

func (f *FieldErrors) Error() string {
	parts := make([]string, 0, len(f.Fields))
	for field, msg := range f.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}

	return strings.Join(parts, "; ")
}

func messageForTag(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fieldError.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fieldError.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fieldError.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fieldError.Param())
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid uuid"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fieldError.Param())
	default:
		return fmt.Sprintf("failed '%s' validation", fieldError.Tag())
	}
}
