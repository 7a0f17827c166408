package viz

import "github.com/charmbracelet/lipgloss"

// Styles shared by the terminal UI.
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	Text   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	Dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))

	StatusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	StatusStopped = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	StatusFault = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	Frame = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)
)
