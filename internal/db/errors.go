package db

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by operations on a store after Close.
var ErrClosed = errors.New("store is closed")

// StorageError wraps a backend failure with the operation and key involved.
type StorageError struct {
	Op    string
	Key   string
	Cause error
}

func (e *StorageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage %s failed: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("storage %s %q failed: %v", e.Op, e.Key, e.Cause)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

func wrapErr(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Key: key, Cause: err}
}
