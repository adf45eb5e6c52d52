package tui

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles for the browse TUI.
//
//nolint:gochecknoglobals // Styles are immutable shared rendering configuration.
var (
	// TitleStyle renders the screen title bar.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	// HeaderStyle renders section headers in the detail view.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	// LabelStyle renders field labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	// ValueStyle renders field values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// SubtleStyle renders help lines and status bars.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// ErrorStyle renders the load-failure screen.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	// SelectedStyle highlights the focused entry in the region menu.
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	// SpinnerStyle colors the loading spinner.
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	// BoxStyle frames the detail view.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)
