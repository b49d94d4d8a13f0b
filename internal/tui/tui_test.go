package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/accounts"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/feedback"
	"github.com/jonathan/resume-builder/internal/logger"
	"github.com/jonathan/resume-builder/internal/service"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

type fixture struct {
	store *accounts.Store
	rec   *feedback.Recorder
	auth  *service.AuthService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := accounts.NewStore(db.NewMemoryStore(), logger.Nop())
	rec := feedback.NewRecorder()
	return &fixture{store: store, rec: rec, auth: service.NewAuthService(store, rec, logger.Nop())}
}

func (f *fixture) root() RootModel {
	ctx := context.Background()
	return NewRootModel(map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, f.auth, f.rec),
		pageRegister: NewRegisterModel(ctx, f.auth, f.rec),
	}, pageMenu)
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send delivers msg and follows the commands it produces, except those
// that produce tea.Quit, until no further message results.
func send(t *testing.T, m tea.Model, msg tea.Msg) (tea.Model, bool) {
	t.Helper()
	for i := 0; msg != nil && i < 10; i++ {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		if cmd == nil {
			return m, false
		}
		msg = cmd()
		if _, ok := msg.(tea.QuitMsg); ok {
			return m, true
		}
		if _, ok := msg.(tea.BatchMsg); ok {
			return m, false
		}
	}
	return m, false
}

func typeText(t *testing.T, m tea.Model, s string) tea.Model {
	t.Helper()
	m, _ = m.Update(runes(s))
	return m
}

func TestMenu_Navigation(t *testing.T) {
	m := NewMenuModel()

	_, cmd := m.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageLogin}, cmd())

	m.Update(key(tea.KeyDown))
	m.Update(key(tea.KeyDown))
	_, cmd = m.Update(key(tea.KeyEnter))
	assert.Equal(t, NavigateTo{Page: pageRegister}, cmd())

	m.Update(key(tea.KeyUp))
	assert.Contains(t, m.View(), "> Sign in")
}

func TestRoot_CtrlCQuits(t *testing.T) {
	f := newFixture(t)
	m, quit := send(t, f.root(), key(tea.KeyCtrlC))
	assert.True(t, quit)
	assert.True(t, m.(RootModel).quitByUser)
}

func TestRoot_UnknownPageIgnored(t *testing.T) {
	f := newFixture(t)
	m, _ := f.root().Update(NavigateTo{Page: "nope"})
	_, isMenu := m.(RootModel).current.(*MenuModel)
	assert.True(t, isMenu)
}

func TestRegisterThenLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	var m tea.Model = f.root()

	// menu -> register
	m, _ = send(t, m, key(tea.KeyDown))
	m, _ = send(t, m, key(tea.KeyEnter))
	require.IsType(t, &RegisterModel{}, m.(RootModel).current)

	m = typeText(t, m, "Jane Doe")
	m, _ = send(t, m, key(tea.KeyTab))
	m = typeText(t, m, "jane@example.com")
	m, _ = send(t, m, key(tea.KeyTab))
	m = typeText(t, m, "Aa1!aaaa")
	assert.Contains(t, m.View(), validation.MsgPasswordStrong)

	m, _ = send(t, m, key(tea.KeyEnter))
	login, ok := m.(RootModel).current.(*LoginModel)
	require.True(t, ok, "register success opens the login page")
	assert.Equal(t, "jane@example.com", login.form.value(0))
	assert.Contains(t, m.View(), service.MsgRegistered)

	exists, err := f.store.Exists(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	// password field is focused after the notice
	m = typeText(t, m, "Aa1!aaaa")
	m, quit := send(t, m, key(tea.KeyEnter))
	assert.True(t, quit)
	assert.Equal(t, "jane@example.com", m.(RootModel).Account())

	current, ok, err := f.store.CurrentUser(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "jane@example.com", current)
}

func TestRegister_ShowsFieldErrors(t *testing.T) {
	f := newFixture(t)
	m := NewRegisterModel(context.Background(), f.auth, f.rec)

	var model tea.Model = m
	model = typeText(t, model, "J")
	model, _ = send(t, model, key(tea.KeyTab))
	model = typeText(t, model, "not-an-email")
	model, _ = send(t, model, key(tea.KeyTab))
	model = typeText(t, model, "short")
	model, _ = send(t, model, key(tea.KeyEnter))

	assert.False(t, m.submitting)
	ids := f.auth.FieldIDs()
	assert.Contains(t, m.errs, ids.RegFullName)
	assert.Contains(t, m.errs, ids.RegEmail)
	assert.Contains(t, m.errs, ids.RegPassword)
	assert.Contains(t, model.View(), m.errs[ids.RegEmail])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newFixture(t)
	m := NewLoginModel(context.Background(), f.auth, f.rec)

	var model tea.Model = m
	model = typeText(t, model, "ghost@example.com")
	model, _ = send(t, model, key(tea.KeyTab))
	model = typeText(t, model, "whatever1")
	model, _ = send(t, model, key(tea.KeyEnter))

	ids := f.auth.FieldIDs()
	assert.Equal(t, service.MsgInvalidCredentials, m.errs[ids.LoginEmail])
	assert.Equal(t, service.MsgInvalidCredentials, m.errs[ids.LoginPassword])
	assert.Equal(t, service.MsgInvalidCredentialsToast, m.status.Message)
	assert.Contains(t, model.View(), service.MsgInvalidCredentialsToast)
}

func TestRegister_ChecksFieldsOnTabAway(t *testing.T) {
	ctx := context.Background()
	ids := service.DefaultFieldIDs()

	t.Run("invalid email", func(t *testing.T) {
		f := newFixture(t)
		m := NewRegisterModel(ctx, f.auth, f.rec)

		var model tea.Model = m
		model, _ = send(t, model, key(tea.KeyTab))
		model = typeText(t, model, "not-an-email")
		model, _ = send(t, model, key(tea.KeyTab))

		assert.Equal(t, service.MsgInvalidEmail, m.errs[ids.RegEmail])
		assert.Contains(t, model.View(), service.MsgInvalidEmail)
		assert.False(t, m.submitting)
	})

	t.Run("registered email", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.store.Put(ctx, "jane@example.com", types.NewAccountRecord("Jane", "jane@example.com", "Aa1!aaaa")))
		m := NewRegisterModel(ctx, f.auth, f.rec)

		var model tea.Model = m
		model, _ = send(t, model, key(tea.KeyTab))
		model = typeText(t, model, "jane@example.com")
		model, _ = send(t, model, key(tea.KeyShiftTab))

		assert.Equal(t, service.MsgEmailTaken, m.errs[ids.RegEmail])
		assert.Equal(t, regFullName, m.form.focus)
	})

	t.Run("fixed email clears its error", func(t *testing.T) {
		f := newFixture(t)
		m := NewRegisterModel(ctx, f.auth, f.rec)

		var model tea.Model = m
		model, _ = send(t, model, key(tea.KeyTab))
		model = typeText(t, model, "jane")
		model, _ = send(t, model, key(tea.KeyTab))
		require.Contains(t, m.errs, ids.RegEmail)

		model, _ = send(t, model, key(tea.KeyShiftTab))
		model = typeText(t, model, "@example.com")
		model, _ = send(t, model, key(tea.KeyTab))
		assert.NotContains(t, m.errs, ids.RegEmail)
		assert.True(t, f.rec.Succeeded(ids.RegEmail))
	})

	t.Run("long enough name clears submit error", func(t *testing.T) {
		f := newFixture(t)
		m := NewRegisterModel(ctx, f.auth, f.rec)

		var model tea.Model = m
		model = typeText(t, model, "J")
		model, _ = send(t, model, key(tea.KeyEnter))
		require.Contains(t, m.errs, ids.RegFullName)

		model = typeText(t, model, "ane")
		model, _ = send(t, model, key(tea.KeyTab))
		assert.NotContains(t, m.errs, ids.RegFullName)
		assert.NotContains(t, model.View(), "Name must be at least 2 characters")
	})
}

func TestLogin_ChecksEmailOnTabAway(t *testing.T) {
	f := newFixture(t)
	ids := service.DefaultFieldIDs()
	m := NewLoginModel(context.Background(), f.auth, f.rec)

	var model tea.Model = m
	model = typeText(t, model, "nope")
	model, _ = send(t, model, key(tea.KeyTab))
	assert.Equal(t, service.MsgInvalidEmail, m.errs[ids.LoginEmail])
	assert.Contains(t, model.View(), service.MsgInvalidEmail)

	// leaving the password input runs no check
	model, _ = send(t, model, key(tea.KeyTab))
	assert.Equal(t, service.MsgInvalidEmail, m.errs[ids.LoginEmail])

	model = typeText(t, model, "@example.com")
	model, _ = send(t, model, key(tea.KeyTab))
	assert.NotContains(t, m.errs, ids.LoginEmail)
}

func TestLogin_EscGoesBack(t *testing.T) {
	f := newFixture(t)
	m := NewLoginModel(context.Background(), f.auth, f.rec)

	_, cmd := m.Update(key(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageMenu}, cmd())
}

func TestForm_Focus(t *testing.T) {
	f := newForm(newInput("a", false), newInput("b", false), newInput("c", true))
	assert.Equal(t, 0, f.focus)

	f.focusPrev()
	assert.Equal(t, 2, f.focus)
	f.focusNext()
	assert.Equal(t, 0, f.focus)

	f.inputs[0].SetValue("x")
	f.focusNext()
	f.reset()
	assert.Equal(t, 0, f.focus)
	assert.Empty(t, f.value(0))
	assert.True(t, f.inputs[0].Focused())
	assert.False(t, f.inputs[1].Focused())
}
