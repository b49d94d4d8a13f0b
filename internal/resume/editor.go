// Package resume holds the in-memory resume edit buffer and its
// reconciliation with the current account's stored resume.
package resume

import (
	"context"
	"slices"
	"strings"

	"github.com/jonathan/resume-builder/internal/feedback"
	"github.com/jonathan/resume-builder/internal/logger"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

// Backend loads and saves the current account's resume. service.Session
// implements it.
type Backend interface {
	LoadResume(ctx context.Context) (types.ResumeDocument, bool, error)
	SaveResume(ctx context.Context, doc types.ResumeDocument) (bool, error)
}

// SampleSource provides the stored demo resume. accounts.Store implements it.
type SampleSource interface {
	SampleResume(ctx context.Context) (types.ResumeDocument, bool, error)
}

// Editor is the edit buffer. Every mutation is written through to the
// backend, which ignores it when nobody is logged in.
type Editor struct {
	doc     types.ResumeDocument
	backend Backend
	fb      feedback.Feedback
	log     *logger.Logger
}

// NewEditor returns an empty Editor.
func NewEditor(backend Backend, fb feedback.Feedback, log *logger.Logger) *Editor {
	if fb == nil {
		fb = feedback.Discard
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Editor{backend: backend, fb: fb, log: log.Component("editor")}
}

// Load replaces the buffer with the stored resume. Without a current
// account the buffer is emptied and false is returned.
func (e *Editor) Load(ctx context.Context) (bool, error) {
	doc, ok, err := e.backend.LoadResume(ctx)
	if err != nil {
		return false, err
	}
	e.doc = doc.Clone()
	return ok, nil
}

// LoadSample replaces the buffer with the stored demo resume, falling back to
// SampleDocument, and saves it.
func (e *Editor) LoadSample(ctx context.Context, src SampleSource) (bool, error) {
	doc, ok, err := src.SampleResume(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		doc = SampleDocument()
	}
	e.doc = doc.Clone()
	return e.Save(ctx)
}

// Document returns a copy of the buffer.
func (e *Editor) Document() types.ResumeDocument {
	return e.doc.Clone()
}

// Field returns the buffered value of field id.
func (e *Editor) Field(id string) (string, error) {
	return Get(e.doc, id)
}

// SetField stores value in field id as typed, runs the live check for the
// email, phone and linkedin fields, then saves. Values failing the live
// check are still stored.
func (e *Editor) SetField(ctx context.Context, id, value string) (bool, error) {
	ref, ok := fieldRefs[id]
	if !ok {
		return false, &UnknownFieldError{Field: id}
	}

	e.check(id, strings.TrimSpace(value))
	*ref(&e.doc) = value
	return e.Save(ctx)
}

func (e *Editor) check(id, value string) {
	var (
		valid bool
		msg   string
	)
	switch id {
	case FieldEmail:
		valid, msg = value == "" || validation.IsValidEmail(value), MsgInvalidEmail
	case FieldPhone:
		valid, msg = value == "" || validation.IsValidPhone(value), MsgInvalidPhone
	case FieldLinkedIn:
		valid, msg = value == "" || validation.IsValidURL(value), MsgInvalidURL
	default:
		return
	}

	if valid {
		e.fb.ClearError(id)
		return
	}
	e.fb.ShowError(id, msg)
}

// AddSkill appends the trimmed skill unless it is empty or already listed.
// It reports whether the list changed.
func (e *Editor) AddSkill(ctx context.Context, skill string) (bool, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" || slices.Contains(e.doc.Skills, skill) {
		return false, nil
	}
	e.doc.Skills = append(e.doc.Skills, skill)
	if _, err := e.Save(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// RemoveSkill removes every exact match of skill. It reports whether the
// list changed.
func (e *Editor) RemoveSkill(ctx context.Context, skill string) (bool, error) {
	n := len(e.doc.Skills)
	e.doc.Skills = slices.DeleteFunc(e.doc.Skills, func(s string) bool { return s == skill })
	if len(e.doc.Skills) == n {
		return false, nil
	}
	if _, err := e.Save(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// Save writes the buffer to the backend. It reports false when there was no
// current account to save to.
func (e *Editor) Save(ctx context.Context) (bool, error) {
	saved, err := e.backend.SaveResume(ctx, e.doc)
	if err != nil {
		e.log.Error().Err(err).Msg("failed to save resume")
		return false, err
	}
	return saved, nil
}
