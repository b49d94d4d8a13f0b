package service

import "github.com/jonathan/resume-builder/internal/validation"

// ErrInvalidCredentials indicates invalid login credentials. Unknown accounts
// and wrong passwords both produce it; Fields carries the message shown on
// both the email and the password field.
type ErrInvalidCredentials struct {
	Fields *validation.FieldErrors
}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

func (e *ErrInvalidCredentials) Unwrap() error {
	return e.Fields.OrNil()
}
