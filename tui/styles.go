package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5FD7FF")).
			Padding(1, 0)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5FD7FF")).
			Padding(1, 2)

	menuStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#87D7FF"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AF87FF"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00D700"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(1, 0)
)
