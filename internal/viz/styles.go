package viz

import "github.com/charmbracelet/lipgloss"

var (
	cyan  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))

	// TitleStyle heads rendered diagrams and plots.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

	// ErrStyle marks synthesis failures in interactive views.
	ErrStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)
