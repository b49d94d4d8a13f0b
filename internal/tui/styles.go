package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jonathan/resume-builder/internal/feedback"
	"github.com/jonathan/resume-builder/internal/validation"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Width(10)

	strengthStyles = map[validation.Strength]lipgloss.Style{
		validation.StrengthWeak:   errorStyle,
		validation.StrengthMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		validation.StrengthStrong: successStyle,
	}
)

func toastStyle(kind feedback.ToastKind) lipgloss.Style {
	switch kind {
	case feedback.ToastSuccess:
		return successStyle
	case feedback.ToastError:
		return errorStyle
	default:
		return infoStyle
	}
}
