// Package styles provides shared lipgloss styles for the setup wizard.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette. Primary is the Logfire brand magenta; status colors use
// ANSI values for broad terminal compatibility.
var (
	Primary  = lipgloss.Color("#E620E9")
	Accent   = lipgloss.Color("#F9A4F7")
	Success  = lipgloss.Color("2") // Green
	Warning  = lipgloss.Color("3") // Yellow
	Error    = lipgloss.Color("1") // Red
	Muted    = lipgloss.Color("245")
	Disabled = lipgloss.Color("240")
)

// Text styles.
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Bold = lipgloss.NewStyle().
		Bold(true)

	SuccessText = lipgloss.NewStyle().
			Foreground(Success)

	WarningText = lipgloss.NewStyle().
			Foreground(Warning)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	HelpText = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	Selected = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	Cursor = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	DetectedTag = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)
)

// Layout styles.
var (
	Banner = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 2)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)
)

// Indicators.
const (
	CheckboxSelected   = "[✓]"
	CheckboxUnselected = "[ ]"

	CursorIndicator = "▸"

	CheckMark = "✓"
	WarnMark  = "⚠"
	CrossMark = "✗"
	Bullet    = "•"
)
