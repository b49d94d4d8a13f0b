// Package accounts maps account ids (email addresses) to account records on
// top of a key-value backend and manages the current-session pointer.
package accounts

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"dario.cat/mergo"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/logger"
	"github.com/jonathan/resume-builder/internal/types"
)

// Well-known keys that share the backend with account records. Neither is a
// valid email address, so they never collide with an account id.
const (
	CurrentUserKey  = "currentUser"
	SampleResumeKey = "sampleResumeData"
)

// Store is the UserStore: one JSON-encoded AccountRecord per key, plus the
// current-session pointer. Ids are used verbatim; callers trim them.
type Store struct {
	kv  db.Store
	log *logger.Logger
}

// NewStore wraps kv.
func NewStore(kv db.Store, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{kv: kv, log: log.Component("accounts")}
}

// Get returns the record stored under id. A missing record is reported by
// the bool, never as an error.
func (s *Store) Get(ctx context.Context, id string) (*types.AccountRecord, bool, error) {
	raw, ok, err := s.kv.GetItem(ctx, id)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read account: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	var rec types.AccountRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, false, &RecordError{ID: id, Cause: err}
	}
	return &rec, true, nil
}

// Exists reports whether a record is stored under id.
func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	_, ok, err := s.kv.GetItem(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to read account: %w", err)
	}
	return ok, nil
}

// Put writes rec under id, replacing any existing record. The record is not
// validated.
func (s *Store) Put(ctx context.Context, id string, rec *types.AccountRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return &RecordError{ID: id, Cause: err}
	}
	if err := s.kv.SetItem(ctx, id, string(data)); err != nil {
		return fmt.Errorf("failed to write account: %w", err)
	}
	s.log.Debug().Str("account", id).Bool("session", rec.Session).Msg("account saved")
	return nil
}

// Update merges the non-zero fields of patch into the record stored under id
// and writes the whole record back. Zero-valued patch fields, including a
// false session flag, leave the stored values untouched; use Put to clear a
// field.
func (s *Store) Update(ctx context.Context, id string, patch *types.AccountRecord) (*types.AccountRecord, error) {
	rec, ok, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}

	if patch != nil {
		if err := mergo.Merge(rec, patch.Clone(), mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge account update: %w", err)
		}
	}

	if err := s.Put(ctx, id, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// IDs lists every account id, skipping the well-known keys.
func (s *Store) IDs(ctx context.Context) ([]string, error) {
	keys, err := s.kv.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return slices.DeleteFunc(keys, isWellKnown), nil
}

func isWellKnown(key string) bool {
	return key == CurrentUserKey || key == SampleResumeKey
}

// CurrentUser returns the id named by the session pointer.
func (s *Store) CurrentUser(ctx context.Context) (string, bool, error) {
	id, ok, err := s.kv.GetItem(ctx, CurrentUserKey)
	if err != nil {
		return "", false, fmt.Errorf("failed to read current user: %w", err)
	}
	if !ok || id == "" {
		return "", false, nil
	}
	return id, true, nil
}

// SetCurrentUser points the session at id. It does not check that the
// record exists or that its session flag is set.
func (s *Store) SetCurrentUser(ctx context.Context, id string) error {
	if err := s.kv.SetItem(ctx, CurrentUserKey, id); err != nil {
		return fmt.Errorf("failed to set current user: %w", err)
	}
	s.log.Debug().Str("account", id).Msg("current user set")
	return nil
}

// ClearCurrentUser removes the session pointer.
func (s *Store) ClearCurrentUser(ctx context.Context) error {
	if err := s.kv.RemoveItem(ctx, CurrentUserKey); err != nil {
		return fmt.Errorf("failed to clear current user: %w", err)
	}
	s.log.Debug().Msg("current user cleared")
	return nil
}

// SampleResume returns the demo resume stored under SampleResumeKey.
func (s *Store) SampleResume(ctx context.Context) (types.ResumeDocument, bool, error) {
	raw, ok, err := s.kv.GetItem(ctx, SampleResumeKey)
	if err != nil {
		return types.ResumeDocument{}, false, fmt.Errorf("failed to read sample resume: %w", err)
	}
	if !ok {
		return types.ResumeDocument{}, false, nil
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return types.ResumeDocument{}, false, &RecordError{ID: SampleResumeKey, Cause: err}
	}
	return doc, true, nil
}

// SetSampleResume stores doc under SampleResumeKey.
func (s *Store) SetSampleResume(ctx context.Context, doc types.ResumeDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return &RecordError{ID: SampleResumeKey, Cause: err}
	}
	if err := s.kv.SetItem(ctx, SampleResumeKey, string(data)); err != nil {
		return fmt.Errorf("failed to write sample resume: %w", err)
	}
	return nil
}
