package export

import (
	"errors"
	"fmt"
)

// ErrNameRequired is returned when the resume has no name to build the
// file name from.
var ErrNameRequired = errors.New(MsgNameRequired)

// ErrNoPages is the cause when an exported file parses but holds no pages.
var ErrNoPages = errors.New("no pages")

// Error represents a failed PDF export.
type Error struct {
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("export error for %s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
