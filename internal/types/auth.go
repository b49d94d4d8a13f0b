// Package types provides type definitions for the records and requests
// shared by the stores, services and CLI.
package types

import "github.com/jonathan/resume-builder/internal/validation"

// RegisterRequest carries the registration form. FullName and Email are
// expected to be trimmed by the caller; Password is taken as typed.
type RegisterRequest struct {
	FullName string `json:"fullName" validate:"filled,min=2"`
	Email    string `json:"email" validate:"filled,resume_email"`
	Password string `json:"password" validate:"filled,resume_password"`
}

// LoginRequest carries the login form. Only presence is checked on the
// password; it is compared verbatim against the stored one.
type LoginRequest struct {
	Email    string `json:"email" validate:"filled,resume_email"`
	Password string `json:"password" validate:"filled"`
}

var registerMessages = validation.Messages{
	"FullName.filled":    "Full name is required",
	"FullName.min":       "Name must be at least 2 characters",
	"Email.filled":       "Email is required",
	"Email.resume_email": "Please enter a valid email address",
	"Password.filled":    "Password is required",
}

var loginMessages = validation.Messages{
	"Email.filled":       "Email is required",
	"Email.resume_email": "Please enter a valid email address",
	"Password.filled":    "Password is required",
}

// Validate checks the registration form. Failures are keyed by Go field
// name; a weak password reports the strength message.
func (r *RegisterRequest) Validate() (*validation.FieldErrors, error) {
	return validation.Check(r, registerMessages)
}

// Validate checks the login form. Failures are keyed by Go field name.
func (r *LoginRequest) Validate() (*validation.FieldErrors, error) {
	return validation.Check(r, loginMessages)
}
