package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// renderField writes one labelled input followed by its error, if any.
func renderField(b *strings.Builder, label string, input textinput.Model, errMsg string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(" ")
	b.WriteString(input.View())
	b.WriteString("\n")
	if errMsg != "" {
		b.WriteString(labelStyle.Render(""))
		b.WriteString(" ")
		b.WriteString(errorStyle.Render(errMsg))
		b.WriteString("\n")
	}
}

func newInput(placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

// form holds a set of inputs with one focused at a time.
type form struct {
	inputs []textinput.Model
	focus  int
}

func newForm(inputs ...textinput.Model) form {
	f := form{inputs: inputs}
	f.inputs[0].Focus()
	return f
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}
