package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/roster/internal/tui/theme"
)

// Styles read the theme at render time, after theme.Init has run

const labelWidth = 20

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title)).
		MarginBottom(1)
}

func labelStyle(focused bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Width(labelWidth).
		Foreground(lipgloss.Color(theme.Label))
	if focused {
		style = style.Bold(true).Foreground(lipgloss.Color(theme.Accent))
	}
	return style
}

func inputBoxStyle(focused bool) lipgloss.Style {
	border := theme.Border
	if focused {
		border = theme.FocusedBorder
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(border))
}

func displayStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Foreground(lipgloss.Color(theme.Normal)).
		Padding(0, 1)
}

func subtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
}
