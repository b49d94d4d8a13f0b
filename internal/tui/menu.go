package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuModel is the start page offering login and registration.
type MenuModel struct {
	items []string
	pages []string
	idx   int
}

// NewMenuModel returns the start menu.
func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []string{"Sign in", "Create account"},
		pages: []string{pageLogin, pageRegister},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		page := m.pages[m.idx]
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	for i, item := range m.items {
		if i == m.idx {
			b.WriteString(titleStyle.Render("> " + item))
		} else {
			b.WriteString("  " + item)
		}
		b.WriteString("\n")
	}
	return renderPage("RESUME BUILDER", strings.TrimRight(b.String(), "\n"), "↑/↓: select │ enter: open")
}
