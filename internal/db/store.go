// Package db provides the key-value storage backends that hold serialized
// account records.
package db

import "context"

//go:generate mockgen -source=store.go -destination=../mock/store_mock.go -package=mock

// Store is a flat string-keyed map of string values. Implementations must be
// safe for concurrent use by one process; writes by concurrent processes are
// last-writer-wins.
type Store interface {
	// GetItem returns the value stored under key. The bool is false when
	// the key is absent.
	GetItem(ctx context.Context, key string) (string, bool, error)
	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
	// Keys lists every stored key in ascending order.
	Keys(ctx context.Context) ([]string, error)
	// Close releases the backend's resources.
	Close() error
}
