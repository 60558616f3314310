package ui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	// Primary is the accent/focus color
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for secondary text (labels, dimensions)
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// Highlight marks the active viewport
	Highlight = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	dimsStyle = lipgloss.NewStyle().
			Foreground(TextSecondary)

	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	inactiveStyle = lipgloss.NewStyle().
			Foreground(TextMuted)

	eventStyle = lipgloss.NewStyle().
			Foreground(TextPrimary)

	flashStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(TextSecondary)

	helpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)
)
