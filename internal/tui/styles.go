package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	controlStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	a11yStyle    = lipgloss.NewStyle().Faint(true).Italic(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).MarginTop(1)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)
