// Package rendering builds the resume preview and renders it as HTML and
// plain text.
package rendering

import "fmt"

// BuiltinTemplate is the TemplateError.Template value for the embedded page.
const BuiltinTemplate = "built-in"

// Stage names the step at which a preview template failed.
type Stage string

const (
	StageLoad    Stage = "load"
	StageParse   Stage = "parse"
	StageExecute Stage = "execute"
)

// TemplateError is returned when a preview template fails at Stage.
// Template is the file path, or BuiltinTemplate.
type TemplateError struct {
	Template string
	Stage    Stage
	Cause    error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("preview template %s: %s: %v", e.Template, e.Stage, e.Cause)
}

func (e *TemplateError) Unwrap() error { return e.Cause }

// TextError is returned when preview HTML cannot be turned into text.
type TextError struct {
	Cause error
}

func (e *TextError) Error() string { return "preview text: " + e.Cause.Error() }

func (e *TextError) Unwrap() error { return e.Cause }
