package feedback

import (
	"maps"
	"sync"

	"github.com/jonathan/resume-builder/internal/validation"
)

// Toast is a recorded notification.
type Toast struct {
	Message string
	Kind    ToastKind
}

// Recorder keeps the current feedback state in memory: the error shown on
// each field, fields marked valid, the last password strength per field and
// every toast in order. The TUI renders from it and tests assert on it.
type Recorder struct {
	mu        sync.Mutex
	errors    map[string]string
	successes map[string]bool
	strength  map[string]validation.PasswordResult
	toasts    []Toast
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		errors:    make(map[string]string),
		successes: make(map[string]bool),
		strength:  make(map[string]validation.PasswordResult),
	}
}

func (r *Recorder) ShowError(field, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors[field] = message
	delete(r.successes, field)
}

func (r *Recorder) ClearError(field string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.errors, field)
}

func (r *Recorder) ShowSuccess(field string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes[field] = true
}

func (r *Recorder) ShowPasswordStrength(field string, result validation.PasswordResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strength[field] = result
}

func (r *Recorder) ShowToast(message string, kind ToastKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, Toast{Message: message, Kind: kind})
}

// Error returns the message currently shown on field.
func (r *Recorder) Error(field string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg, ok := r.errors[field]
	return msg, ok
}

// Errors returns a copy of every field error currently shown.
func (r *Recorder) Errors() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.errors)
}

// Succeeded reports whether field is marked valid.
func (r *Recorder) Succeeded(field string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.successes[field]
}

// Strength returns the last password strength shown on field.
func (r *Recorder) Strength(field string) (validation.PasswordResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.strength[field]
	return res, ok
}

// Toasts returns every toast shown so far, oldest first.
func (r *Recorder) Toasts() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Toast, len(r.toasts))
	copy(out, r.toasts)
	return out
}

// LastToast returns the most recent toast.
func (r *Recorder) LastToast() (Toast, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.toasts) == 0 {
		return Toast{}, false
	}
	return r.toasts[len(r.toasts)-1], true
}

// Reset forgets all recorded state.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.errors)
	clear(r.successes)
	clear(r.strength)
	r.toasts = nil
}
