package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	PrimaryColor = lipgloss.Color("#4ADE80") // Green
	SubtleColor  = lipgloss.Color("#626262") // Gray
	ErrorColor   = lipgloss.Color("#F87171") // Red
	TextColor    = lipgloss.Color("#E0E0E0")
	BorderColor  = lipgloss.Color("#333333")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	CountStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	CountOverStyle = CountStyle.
			Foreground(ErrorColor)

	TabStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	ActiveTabStyle = TabStyle.
			Foreground(PrimaryColor).
			BorderForeground(PrimaryColor).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)
