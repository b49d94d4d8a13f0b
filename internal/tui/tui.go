// Package tui is the interactive terminal front end for signing in and
// creating accounts.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jonathan/resume-builder/internal/feedback"
	"github.com/jonathan/resume-builder/internal/logger"
	"github.com/jonathan/resume-builder/internal/service"
	"github.com/jonathan/resume-builder/internal/validation"
)

// ErrUserQuit is returned when the user leaves before signing in.
var ErrUserQuit = errors.New("user quit")

// AuthService is the part of service.AuthService the forms use. Its
// feedback sink must be the Recorder handed to New.
type AuthService interface {
	Register(ctx context.Context, fullName, email, password string) error
	Login(ctx context.Context, email, password string) error
	CheckRegisterEmail(ctx context.Context, email string) error
	CheckRegisterFullName(fullName string)
	CheckLoginEmail(email string)
	CheckPasswordStrength(password string) validation.PasswordResult
	FieldIDs() service.FieldIDs
}

// TUI runs the sign-in flow as a bubbletea program.
type TUI struct {
	auth AuthService
	rec  *feedback.Recorder
	log  *logger.Logger
	opts []tea.ProgramOption
}

// New returns a TUI. rec must be the feedback sink auth reports to.
func New(auth AuthService, rec *feedback.Recorder, log *logger.Logger, opts ...tea.ProgramOption) *TUI {
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{auth: auth, rec: rec, log: log.Component("tui"), opts: opts}
}

// LoginFlow runs the menu, login and register pages until a login succeeds
// and returns the signed-in email.
func (t *TUI) LoginFlow(ctx context.Context) (string, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.auth, t.rec),
		pageRegister: NewRegisterModel(ctx, t.auth, t.rec),
	}

	root := NewRootModel(pages, pageMenu)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.opts...)
	finalModel, err := tea.NewProgram(root, opts...).Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser || result.account == "" {
		return "", ErrUserQuit
	}

	t.log.Debug().Str("account", result.account).Msg("signed in from tui")
	return result.account, nil
}
