package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorAccent = lipgloss.Color("#10B981") // green
	colorMuted  = lipgloss.Color("#6B7280") // gray
	colorDanger = lipgloss.Color("#EF4444") // red

	// Panes
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder())

	paneTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	helpSepStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Status line
	statusStyle = lipgloss.NewStyle().
			Foreground(colorDanger)
)
