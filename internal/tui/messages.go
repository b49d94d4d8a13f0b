package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jonathan/resume-builder/internal/feedback"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// outcome is the feedback captured while a command ran.
type outcome struct {
	Errors   map[string]string
	Toast    feedback.Toast
	HasToast bool
}

// LoginResult is produced when a login attempt finishes.
type LoginResult struct {
	Email string
	Err   error
	outcome
}

// RegisterResult is produced when a registration attempt finishes.
type RegisterResult struct {
	Email string
	Err   error
	outcome
}

// RegisterSuccessNotice is delivered to the login page after registering.
type RegisterSuccessNotice struct {
	Email   string
	Message string
}

// FieldChecked is produced when the live check for a field that lost focus
// finishes. Error is empty when the field shows no error afterwards.
type FieldChecked struct {
	Field string
	Error string
	Err   error
}

// apply records the check's outcome in errs, allocating it if needed.
func (c FieldChecked) apply(errs map[string]string) map[string]string {
	if errs == nil {
		errs = make(map[string]string)
	}
	if c.Error != "" {
		errs[c.Field] = c.Error
	} else {
		delete(errs, c.Field)
	}
	return errs
}

// checkField runs check in a command and reports the error rec then shows
// on field.
func checkField(rec *feedback.Recorder, field string, check func() error) tea.Cmd {
	return func() tea.Msg {
		err := check()
		msg, _ := rec.Error(field)
		return FieldChecked{Field: field, Error: msg, Err: err}
	}
}

func capture(rec *feedback.Recorder) outcome {
	toast, ok := rec.LastToast()
	return outcome{Errors: rec.Errors(), Toast: toast, HasToast: ok}
}
