package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/roster/internal/tui/notifications"
)

// View renders the roster window
func (m Model) View() string {
	sections := []string{
		titleStyle().Render("Student Roster"),
		m.renderInputs(),
		m.renderNotifications(),
		displayStyle().Width(max(m.width-2, 10)).Render(m.display.View()),
		m.help.View(m.keys),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderNotifications() string {
	if !m.notifications.HasAny() {
		return ""
	}
	rendered := make([]string, 0, len(m.notifications.All()))
	for _, n := range m.notifications.All() {
		rendered = append(rendered, notifications.RenderInlineFromState(n))
	}
	return strings.Join(rendered, " ")
}
