package feedback

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/jonathan/resume-builder/internal/validation"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	fieldStyle   = lipgloss.NewStyle().Bold(true)

	strengthStyles = map[validation.Strength]lipgloss.Style{
		validation.StrengthWeak:   errorStyle,
		validation.StrengthMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		validation.StrengthStrong: successStyle,
	}
)

// Terminal writes feedback as styled lines. Cleared errors produce no
// output. Labels maps field ids to the names printed; unknown ids are
// printed as is.
type Terminal struct {
	w      io.Writer
	Labels map[string]string
}

// NewTerminal returns a Terminal writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

func (t *Terminal) label(field string) string {
	if l, ok := t.Labels[field]; ok {
		return l
	}
	return field
}

func (t *Terminal) ShowError(field, message string) {
	fmt.Fprintf(t.w, "%s %s: %s\n", errorStyle.Render("✗"), fieldStyle.Render(t.label(field)), message)
}

func (t *Terminal) ClearError(string) {}

func (t *Terminal) ShowSuccess(field string) {
	fmt.Fprintf(t.w, "%s %s\n", successStyle.Render("✓"), fieldStyle.Render(t.label(field)))
}

func (t *Terminal) ShowPasswordStrength(field string, result validation.PasswordResult) {
	style, ok := strengthStyles[result.Strength]
	if !ok {
		style = infoStyle
	}
	fmt.Fprintf(t.w, "%s strength: %s\n", fieldStyle.Render(t.label(field)), style.Render(result.Message))
}

func (t *Terminal) ShowToast(message string, kind ToastKind) {
	var style lipgloss.Style
	switch kind {
	case ToastSuccess:
		style = successStyle
	case ToastError:
		style = errorStyle
	default:
		style = infoStyle
	}
	fmt.Fprintln(t.w, style.Render(message))
}
