package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jonathan/resume-builder/internal/feedback"
	"github.com/jonathan/resume-builder/internal/service"
	"github.com/jonathan/resume-builder/internal/validation"
)

const (
	regFullName = iota
	regEmail
	regPassword
)

// RegisterModel is the registration page: full name, email and password.
// The password strength is scored as it is typed. On success the form is
// cleared and the login page opens with the email filled in.
type RegisterModel struct {
	ctx  context.Context
	auth AuthService
	rec  *feedback.Recorder
	ids  service.FieldIDs

	form       form
	submitting bool
	errs       map[string]string
	status     feedback.Toast
	strength   *validation.PasswordResult
}

// NewRegisterModel returns a RegisterModel with the name input focused.
func NewRegisterModel(ctx context.Context, auth AuthService, rec *feedback.Recorder) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		rec:  rec,
		ids:  auth.FieldIDs(),
		form: newForm(
			newInput("full name", false),
			newInput("email", false),
			newInput("password", true),
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return nil
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RegisterResult:
		m.submitting = false
		if msg.Err == nil {
			notice := RegisterSuccessNotice{Email: msg.Email, Message: service.MsgRegistered}
			if msg.HasToast {
				notice.Message = msg.Toast.Message
			}
			m.form.reset()
			m.errs, m.strength, m.status = nil, nil, feedback.Toast{}
			return m, func() tea.Msg { return NavigateTo{Page: pageLogin, Payload: notice} }
		}
		m.errs = msg.Errors
		if msg.HasToast {
			m.status = msg.Toast
		} else if len(msg.Errors) == 0 {
			m.status = feedback.Toast{Message: msg.Err.Error(), Kind: feedback.ToastError}
		}
		return m, nil
	case FieldChecked:
		m.errs = msg.apply(m.errs)
		if msg.Err != nil {
			m.status = feedback.Toast{Message: msg.Err.Error(), Kind: feedback.ToastError}
		}
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
			return m, m.cmdRegister(m.form.value(regFullName), m.form.value(regEmail), m.form.value(regPassword))
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	if m.form.focus == regPassword {
		m.scorePassword()
	}
	return m, cmd
}

func (m *RegisterModel) scorePassword() {
	password := m.form.value(regPassword)
	if password == "" {
		m.strength = nil
		return
	}
	result := m.auth.CheckPasswordStrength(password)
	m.strength = &result
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	renderField(&b, "Full name", m.form.inputs[regFullName], m.errs[m.ids.RegFullName])
	renderField(&b, "Email", m.form.inputs[regEmail], m.errs[m.ids.RegEmail])
	renderField(&b, "Password", m.form.inputs[regPassword], m.errs[m.ids.RegPassword])

	if m.strength != nil {
		style, ok := strengthStyles[m.strength.Strength]
		if !ok {
			style = infoStyle
		}
		b.WriteString(labelStyle.Render(""))
		b.WriteString(" ")
		b.WriteString(style.Render(m.strength.Message))
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}
	if m.status.Message != "" {
		b.WriteString("\n")
		b.WriteString(toastStyle(m.status.Kind).Render(m.status.Message))
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

// cmdCheck runs the live check for the input that just lost focus.
func (m *RegisterModel) cmdCheck(input int) tea.Cmd {
	ctx, auth, rec := m.ctx, m.auth, m.rec
	switch input {
	case regFullName:
		name := m.form.value(regFullName)
		return checkField(rec, m.ids.RegFullName, func() error {
			auth.CheckRegisterFullName(name)
			return nil
		})
	case regEmail:
		email := m.form.value(regEmail)
		return checkField(rec, m.ids.RegEmail, func() error {
			return auth.CheckRegisterEmail(ctx, email)
		})
	}
	return nil
}

func (m *RegisterModel) cmdRegister(fullName, email, password string) tea.Cmd {
	ctx, auth, rec := m.ctx, m.auth, m.rec
	rec.Reset()

	return func() tea.Msg {
		err := auth.Register(ctx, fullName, email, password)
		return RegisterResult{Email: strings.TrimSpace(email), Err: err, outcome: capture(rec)}
	}
}
