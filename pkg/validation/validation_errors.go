package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one rejected field with its user-facing message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the full set of rejected fields for one submission. It
// implements error so a usecase can return it through a plain error value.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// FormatValidationErrors converts validator.ValidationErrors to per-field
// user-friendly messages keyed by the JSON field name.
func FormatValidationErrors(err error) Errors {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return a generic entry
		return Errors{{Field: "body", Message: err.Error()}}
	}

	errs := make(Errors, 0, len(validationErrors))
	for _, e := range validationErrors {
		errs = append(errs, formatSingleError(e))
	}
	return errs
}

// formatSingleError maps a single validator failure to its message
func formatSingleError(e validator.FieldError) FieldError {
	field := strings.ToLower(e.Field())

	switch field {
	case "email":
		// Syntax and presence collapse into one message for email
		return FieldError{Field: field, Message: "Valid email is required"}
	case "name":
		if e.Tag() == "min" {
			return FieldError{Field: field, Message: fmt.Sprintf("Name must be at least %s characters", e.Param())}
		}
		return FieldError{Field: field, Message: "Name is required"}
	case "message":
		if e.Tag() == "min" {
			return FieldError{Field: field, Message: fmt.Sprintf("Message must be at least %s characters", e.Param())}
		}
		return FieldError{Field: field, Message: "Message is required"}
	}

	// Fallback for fields without a dedicated message
	switch e.Tag() {
	case "required":
		return FieldError{Field: field, Message: fmt.Sprintf("%s is required", e.Field())}
	default:
		return FieldError{Field: field, Message: fmt.Sprintf("%s is invalid", e.Field())}
	}
}
