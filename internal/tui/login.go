package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jonathan/resume-builder/internal/feedback"
	"github.com/jonathan/resume-builder/internal/service"
)

// LoginModel is the login page: email and password inputs. Submitting runs
// AuthService.Login in a command; the outcome arrives as a LoginResult.
type LoginModel struct {
	ctx  context.Context
	auth AuthService
	rec  *feedback.Recorder
	ids  service.FieldIDs

	form       form
	submitting bool
	errs       map[string]string
	status     feedback.Toast
}

// NewLoginModel returns a LoginModel with the email input focused.
func NewLoginModel(ctx context.Context, auth AuthService, rec *feedback.Recorder) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		rec:  rec,
		ids:  auth.FieldIDs(),
		form: newForm(newInput("email", false), newInput("password", true)),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return nil
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.submitting = false
		m.errs = msg.Errors
		if msg.HasToast {
			m.status = msg.Toast
		}
		return m, nil
	case FieldChecked:
		m.errs = msg.apply(m.errs)
		return m, nil
	case RegisterSuccessNotice:
		m.form.reset()
		m.form.inputs[0].SetValue(msg.Email)
		m.form.focusNext()
		m.errs = nil
		m.status = feedback.Toast{Message: msg.Message, Kind: feedback.ToastSuccess}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.errs, m.status = nil, feedback.Toast{}
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab", "down":
			left := m.form.focus
			m.form.focusNext()
			return m, m.cmdCheck(left)
		case "shift+tab", "up":
			left := m.form.focus
			m.form.focusPrev()
			return m, m.cmdCheck(left)
		case "enter":
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			m.status = feedback.Toast{}
			return m, m.cmdLogin(m.form.value(0), m.form.value(1))
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	renderField(&b, "Email", m.form.inputs[0], m.errs[m.ids.LoginEmail])
	renderField(&b, "Password", m.form.inputs[1], m.errs[m.ids.LoginPassword])

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}
	if m.status.Message != "" {
		b.WriteString("\n")
		b.WriteString(toastStyle(m.status.Kind).Render(m.status.Message))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

// cmdCheck runs the live check for the input that just lost focus. Only
// the email input has one.
func (m *LoginModel) cmdCheck(input int) tea.Cmd {
	if input != 0 {
		return nil
	}
	auth, email := m.auth, m.form.value(0)
	return checkField(m.rec, m.ids.LoginEmail, func() error {
		auth.CheckLoginEmail(email)
		return nil
	})
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	ctx, auth, rec := m.ctx, m.auth, m.rec
	rec.Reset()

	return func() tea.Msg {
		err := auth.Login(ctx, email, password)
		return LoginResult{Email: strings.TrimSpace(email), Err: err, outcome: capture(rec)}
	}
}
