package tui

import "github.com/charmbracelet/lipgloss"

const (
	tileW = 11
	tileH = 3
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F5F5F5"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	tileStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("94")).
			Width(tileW).
			Height(tileH).
			Align(lipgloss.Center, lipgloss.Center)
	lockedTileStyle = tileStyle.Foreground(lipgloss.Color("220")).Background(lipgloss.Color("94"))
	solvedTileStyle = tileStyle.BorderForeground(lipgloss.Color("34")).Foreground(lipgloss.Color("#E0E0E0"))
	cursorBorder    = lipgloss.Color("39")
	openBorder      = lipgloss.Color("205")

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 2).
			Width(3*(tileW+2) - 2)
	finalDialogStyle = dialogStyle.BorderForeground(openBorder)
	completeStyle    = dialogStyle.BorderForeground(lipgloss.Color("220")).Align(lipgloss.Center)

	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	nearStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
)
