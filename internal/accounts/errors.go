package accounts

import (
	"errors"
	"fmt"
)

// ErrAccountNotFound is returned by Update when no record exists for the id.
var ErrAccountNotFound = errors.New("account not found")

// RecordError reports a stored value that could not be decoded or encoded.
type RecordError struct {
	ID    string
	Cause error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("account record %q: %v", e.ID, e.Cause)
}

func (e *RecordError) Unwrap() error {
	return e.Cause
}
