// Package service implements the registration, login, logout and resume
// persistence workflows over the account store.
package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/accounts"
	"github.com/jonathan/resume-builder/internal/feedback"
	"github.com/jonathan/resume-builder/internal/logger"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

const minFullNameLength = 2

// AuthService provides the account workflows. Every outcome is reported to
// the Feedback sink against the configured field ids and also returned as
// an error.
type AuthService struct {
	store *accounts.Store
	fb    feedback.Feedback
	ids   FieldIDs
	log   *logger.Logger
}

// Option configures an AuthService.
type Option func(*AuthService)

// WithFieldIDs overrides DefaultFieldIDs.
func WithFieldIDs(ids FieldIDs) Option {
	return func(s *AuthService) { s.ids = ids }
}

// NewAuthService creates a new AuthService with the given dependencies. A nil
// fb discards feedback.
func NewAuthService(store *accounts.Store, fb feedback.Feedback, log *logger.Logger, opts ...Option) *AuthService {
	if fb == nil {
		fb = feedback.Discard
	}
	if log == nil {
		log = logger.Nop()
	}
	s := &AuthService{
		store: store,
		fb:    fb,
		ids:   DefaultFieldIDs(),
		log:   log.Component("auth"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FieldIDs returns the ids feedback is reported against.
func (s *AuthService) FieldIDs() FieldIDs {
	return s.ids
}

// Register creates an account for email. Full name and email are trimmed,
// the password is stored as typed. On any field failure nothing is written
// and the returned error is a *validation.FieldErrors keyed by field id.
func (s *AuthService) Register(ctx context.Context, fullName, email, password string) error {
	s.fb.ClearError(s.ids.RegFullName)
	s.fb.ClearError(s.ids.RegEmail)
	s.fb.ClearError(s.ids.RegPassword)

	req := types.RegisterRequest{
		FullName: strings.TrimSpace(fullName),
		Email:    strings.TrimSpace(email),
		Password: password,
	}

	checked, err := req.Validate()
	if err != nil {
		return fmt.Errorf("failed to validate registration: %w", err)
	}
	errs := s.remap(checked, map[string]string{
		"FullName": s.ids.RegFullName,
		"Email":    s.ids.RegEmail,
		"Password": s.ids.RegPassword,
	})

	if _, bad := errs.Get(s.ids.RegEmail); !bad {
		exists, err := s.store.Exists(ctx, req.Email)
		if err != nil {
			return fmt.Errorf("failed to check email existence: %w", err)
		}
		if exists {
			errs.Add(s.ids.RegEmail, MsgEmailTaken)
		}
	}

	if errs.Len() > 0 {
		s.report(errs)
		s.log.Debug().Strs("fields", errs.Fields()).Msg("registration rejected")
		return errs
	}

	rec := types.NewAccountRecord(req.FullName, req.Email, req.Password)
	if err := s.store.Put(ctx, req.Email, rec); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	s.fb.ShowToast(MsgRegistered, feedback.ToastSuccess)
	s.log.Info().Str("account", req.Email).Msg("account registered")
	return nil
}

// Login authenticates email by exact password comparison, marks the record
// as logged in and points the session at it. Unknown accounts and wrong
// passwords both return *ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	s.fb.ClearError(s.ids.LoginEmail)
	s.fb.ClearError(s.ids.LoginPassword)

	req := types.LoginRequest{
		Email:    strings.TrimSpace(email),
		Password: password,
	}

	checked, err := req.Validate()
	if err != nil {
		return fmt.Errorf("failed to validate login: %w", err)
	}
	errs := s.remap(checked, map[string]string{
		"Email":    s.ids.LoginEmail,
		"Password": s.ids.LoginPassword,
	})
	if errs.Len() > 0 {
		s.report(errs)
		return errs
	}

	rec, ok, err := s.store.Get(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to get account: %w", err)
	}

	// An unknown account and a wrong password get the same errors so the
	// form never says which one it was.
	if !ok || rec.Password != req.Password {
		fields := &validation.FieldErrors{}
		fields.Add(s.ids.LoginEmail, MsgInvalidCredentials)
		fields.Add(s.ids.LoginPassword, MsgInvalidCredentials)
		s.report(fields)
		s.fb.ShowToast(MsgInvalidCredentialsToast, feedback.ToastError)
		s.log.Debug().Str("account", req.Email).Msg("login rejected")
		return &ErrInvalidCredentials{Fields: fields}
	}

	rec.Session = true
	if err := s.store.Put(ctx, req.Email, rec); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	if err := s.store.SetCurrentUser(ctx, req.Email); err != nil {
		return err
	}

	s.fb.ShowToast(MsgLoggedIn, feedback.ToastSuccess)
	s.log.Info().Str("account", req.Email).Msg("logged in")
	return nil
}

// Logout ends the current session: the current account's session flag is
// cleared if the record still exists, then the pointer is removed. Without a
// current user nothing is written.
func (s *AuthService) Logout(ctx context.Context) error {
	id, ok, err := s.store.CurrentUser(ctx)
	if err != nil {
		return err
	}

	if ok {
		rec, found, err := s.store.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get account: %w", err)
		}
		if found {
			rec.Session = false
			if err := s.store.Put(ctx, id, rec); err != nil {
				return fmt.Errorf("failed to end session: %w", err)
			}
		}
		if err := s.store.ClearCurrentUser(ctx); err != nil {
			return err
		}
		s.log.Info().Str("account", id).Bool("record_found", found).Msg("logged out")
	}

	s.fb.ShowToast(MsgLoggedOut, feedback.ToastInfo)
	return nil
}

// CheckRegisterEmail is the live check run when the registration email
// field loses focus. Empty input is left alone.
func (s *AuthService) CheckRegisterEmail(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if validation.IsEmpty(email) {
		return nil
	}
	if !validation.IsValidEmail(email) {
		s.fb.ShowError(s.ids.RegEmail, MsgInvalidEmail)
		return nil
	}

	exists, err := s.store.Exists(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		s.fb.ShowError(s.ids.RegEmail, MsgEmailTaken)
		return nil
	}

	s.fb.ClearError(s.ids.RegEmail)
	s.fb.ShowSuccess(s.ids.RegEmail)
	return nil
}

// CheckRegisterFullName marks the full name valid once it is long enough.
// It never reports an error; Register does.
func (s *AuthService) CheckRegisterFullName(fullName string) {
	name := strings.TrimSpace(fullName)
	if !validation.IsEmpty(name) && utf8.RuneCountInString(name) >= minFullNameLength {
		s.fb.ClearError(s.ids.RegFullName)
		s.fb.ShowSuccess(s.ids.RegFullName)
	}
}

// CheckPasswordStrength scores password as it is typed and shows the result.
// Empty input is left alone.
func (s *AuthService) CheckPasswordStrength(password string) validation.PasswordResult {
	result := validation.ValidatePassword(password)
	if password == "" {
		return result
	}
	s.fb.ShowPasswordStrength(s.ids.RegPassword, result)
	if result.IsValid {
		s.fb.ClearError(s.ids.RegPassword)
	}
	return result
}

// CheckLoginEmail is the live check run when the login email field loses
// focus.
func (s *AuthService) CheckLoginEmail(email string) {
	email = strings.TrimSpace(email)
	if !validation.IsEmpty(email) && !validation.IsValidEmail(email) {
		s.fb.ShowError(s.ids.LoginEmail, MsgInvalidEmail)
		return
	}
	s.fb.ClearError(s.ids.LoginEmail)
}

// remap rekeys struct-field errors to form field ids.
func (s *AuthService) remap(errs *validation.FieldErrors, ids map[string]string) *validation.FieldErrors {
	out := &validation.FieldErrors{}
	if errs == nil {
		return out
	}
	for _, fe := range errs.Errors {
		field, ok := ids[fe.Field]
		if !ok {
			field = fe.Field
		}
		out.Add(field, fe.Message)
	}
	return out
}

func (s *AuthService) report(errs *validation.FieldErrors) {
	for _, fe := range errs.Errors {
		s.fb.ShowError(fe.Field, fe.Message)
	}
}
