package resume

import "fmt"

// UnknownFieldError is returned for a field id the editor does not have.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown resume field %q", e.Field)
}
