// Package validation provides the field validators shared by the account
// and resume workflows.
package validation

import (
	"fmt"
	"strings"
)

// FieldError is a single validation failure reported against a form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors collects field-level failures in the order they were found.
// A nil or empty *FieldErrors means the input was accepted.
type FieldErrors struct {
	Errors []FieldError
}

// Add records a failure for field.
func (e *FieldErrors) Add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

// Len returns the number of recorded failures.
func (e *FieldErrors) Len() int {
	if e == nil {
		return 0
	}
	return len(e.Errors)
}

// Get returns the first message recorded for field.
func (e *FieldErrors) Get(field string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, fe := range e.Errors {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

// Fields returns the ids of the failing fields, in order.
func (e *FieldErrors) Fields() []string {
	if e == nil {
		return nil
	}
	fields := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}

// OrNil returns e as an error, or nil when nothing was recorded.
func (e *FieldErrors) OrNil() error {
	if e.Len() == 0 {
		return nil
	}
	return e
}

func (e *FieldErrors) Error() string {
	if e.Len() == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
