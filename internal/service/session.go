package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/jonathan/resume-builder/internal/accounts"
	"github.com/jonathan/resume-builder/internal/logger"
	"github.com/jonathan/resume-builder/internal/types"
)

// Themes accepted by SetTheme.
var Themes = []string{"light", "dark"}

// Account is a stored record together with its id.
type Account struct {
	ID     string
	Record *types.AccountRecord
}

// DisplayName is the label shown in the account menu.
func (a *Account) DisplayName() string {
	return a.Record.DisplayName(a.ID)
}

// Greeting is the name shown in the page header.
func (a *Account) Greeting() string {
	return a.Record.Greeting(a.ID)
}

// Session is the session context handed to resume workflows. It resolves
// the current account through the store on every call and holds no
// account state of its own.
type Session struct {
	store *accounts.Store
	log   *logger.Logger
}

// NewSession wraps store.
func NewSession(store *accounts.Store, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	return &Session{store: store, log: log.Component("session")}
}

// Store returns the underlying account store.
func (s *Session) Store() *accounts.Store {
	return s.store
}

// Restore reports whether a session survives from an earlier run: the
// pointer must name an existing record whose session flag is set.
func (s *Session) Restore(ctx context.Context) (*Account, bool, error) {
	acct, ok, err := s.Current(ctx)
	if err != nil || !ok {
		return nil, false, err
	}
	if !acct.Record.Session {
		s.log.Debug().Str("account", acct.ID).Msg("pointer names a logged out account")
		return nil, false, nil
	}
	return acct, true, nil
}

// Current returns the account named by the pointer, without checking its
// session flag. A pointer to a missing record yields no account.
func (s *Session) Current(ctx context.Context) (*Account, bool, error) {
	id, ok, err := s.store.CurrentUser(ctx)
	if err != nil || !ok {
		return nil, false, err
	}
	rec, found, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	return &Account{ID: id, Record: rec}, true, nil
}

// LoadResume returns a copy of the current account's resume.
func (s *Session) LoadResume(ctx context.Context) (types.ResumeDocument, bool, error) {
	acct, ok, err := s.Current(ctx)
	if err != nil || !ok {
		return types.ResumeDocument{}, false, err
	}
	return acct.Record.Resume.Clone(), true, nil
}

// SaveResume replaces the current account's resume with doc and writes the
// record back. Without a current account it does nothing and reports false.
func (s *Session) SaveResume(ctx context.Context, doc types.ResumeDocument) (bool, error) {
	acct, ok, err := s.Current(ctx)
	if err != nil || !ok {
		return false, err
	}

	acct.Record.Resume = doc.Clone()
	if err := s.store.Put(ctx, acct.ID, acct.Record); err != nil {
		return false, fmt.Errorf("failed to save resume: %w", err)
	}
	s.log.Debug().Str("account", acct.ID).Int("skills", len(doc.Skills)).Msg("resume saved")
	return true, nil
}

// SetTheme records the current account's theme through a merge update.
func (s *Session) SetTheme(ctx context.Context, theme string) (bool, error) {
	if !slices.Contains(Themes, theme) {
		return false, fmt.Errorf("unknown theme %q", theme)
	}

	acct, ok, err := s.Current(ctx)
	if err != nil || !ok {
		return false, err
	}
	if _, err := s.store.Update(ctx, acct.ID, &types.AccountRecord{Theme: theme}); err != nil {
		return false, err
	}
	return true, nil
}
