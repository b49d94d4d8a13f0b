// Package feedback defines the sink that workflows report field errors,
// password strength and notifications to.
package feedback

import "github.com/jonathan/resume-builder/internal/validation"

// ToastKind is the severity of a transient notification.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
)

// Feedback receives per-field validation state and notifications. Fields are
// identified by form field id, for example "reg-email".
type Feedback interface {
	ShowError(field, message string)
	ClearError(field string)
	ShowSuccess(field string)
	ShowPasswordStrength(field string, result validation.PasswordResult)
	ShowToast(message string, kind ToastKind)
}

// Discard is a Feedback that drops everything.
var Discard Feedback = discard{}

type discard struct{}

func (discard) ShowError(string, string)                               {}
func (discard) ClearError(string)                                      {}
func (discard) ShowSuccess(string)                                     {}
func (discard) ShowPasswordStrength(string, validation.PasswordResult) {}
func (discard) ShowToast(string, ToastKind)                            {}
