package ui

import (
	"github.com/charmbracelet/lipgloss"

	"emojipick/internal/theme"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	tabStyle       = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	tabActiveStyle = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
	selectedStyle  = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
	statusStyle    = lipgloss.NewStyle().Faint(true)
	helpStyle      = lipgloss.NewStyle().Faint(true)
)

func applyTheme(th theme.Theme) {
	fg := th.Colors.Foreground
	bg := th.Colors.Background
	accent := th.Colors.Accent
	if fg != "" {
		titleStyle = titleStyle.Foreground(lipgloss.Color(fg))
		statusStyle = statusStyle.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		titleStyle = titleStyle.Background(lipgloss.Color(bg))
	}
	if accent != "" {
		tabActiveStyle = tabActiveStyle.Foreground(lipgloss.Color(accent))
		selectedStyle = selectedStyle.Foreground(lipgloss.Color(accent)).Reverse(false)
	}
}
