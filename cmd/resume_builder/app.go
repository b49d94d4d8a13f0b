package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/accounts"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/feedback"
	"github.com/jonathan/resume-builder/internal/logger"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/service"
)

var errNotSignedIn = errors.New("not signed in: run 'resume_builder login' first")

// fieldLabels names form fields in terminal feedback.
var fieldLabels = map[string]string{
	"reg-fullname":       "Full name",
	"reg-email":          "Email",
	"reg-password":       "Password",
	"login-email":        "Email",
	"login-password":     "Password",
	resume.FieldEmail:    "Email",
	resume.FieldPhone:    "Phone",
	resume.FieldLinkedIn: "LinkedIn",
}

// app holds the dependencies of one command run.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	kv       db.Store
	accounts *accounts.Store
	session  *service.Session
	fb       *feedback.Terminal

	logCloser io.Closer
}

func openApp(cmd *cobra.Command) (*app, error) {
	overrides := &config.Config{
		Storage: config.Storage{Driver: storageDriver, Path: storagePath},
		Log:     config.Log{Level: logLevel},
	}
	cfg, err := config.Load(configPath, overrides)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, logCloser, err := logger.NewFile("cli", cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	log = log.Component(cmd.Name())

	kv, err := db.Open(cmd.Context(), cfg.Storage, log)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	store := accounts.NewStore(kv, log)
	fb := feedback.NewTerminal(cmd.OutOrStdout())
	fb.Labels = fieldLabels

	return &app{
		cfg:       cfg,
		log:       log,
		kv:        kv,
		accounts:  store,
		session:   service.NewSession(store, log),
		fb:        fb,
		logCloser: logCloser,
	}, nil
}

func (a *app) Close() error {
	return errors.Join(a.kv.Close(), a.logCloser.Close())
}

func (a *app) auth(fb feedback.Feedback) *service.AuthService {
	return service.NewAuthService(a.accounts, fb, a.log)
}

// requireSession returns the signed-in account.
func (a *app) requireSession(cmd *cobra.Command) (*service.Account, error) {
	acct, ok, err := a.session.Restore(cmd.Context())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errNotSignedIn
	}
	return acct, nil
}

// editor returns an editor loaded with the signed-in account's resume.
func (a *app) editor(cmd *cobra.Command) (*resume.Editor, error) {
	if _, err := a.requireSession(cmd); err != nil {
		return nil, err
	}
	ed := resume.NewEditor(a.session, a.fb, a.log)
	if _, err := ed.Load(cmd.Context()); err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}
	return ed, nil
}

// withApp opens the app for the duration of run.
func withApp(run func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := a.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		return run(cmd, args, a)
	}
}
