package horizon

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound      = errors.New("event not found")
	ErrDuplicateID   = errors.New("duplicate event id")
	ErrInvalidFilter = errors.New("invalid filter value")
)

type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (fe FieldError) String() string {
	return fmt.Sprintf("%s: %s", fe.Field, fe.Reason)
}

// ValidationError reports every field of a draft that failed.
type ValidationError struct {
	Fields []FieldError

	cause error
}

func NewValidationError(cause error, fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields, cause: cause}
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, fe := range e.Fields {
		parts[i] = fe.String()
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

// Has reports whether field is among the failures.
func (e *ValidationError) Has(field string) bool {
	for _, fe := range e.Fields {
		if fe.Field == field {
			return true
		}
	}
	return false
}
