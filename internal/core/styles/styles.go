// Package styles provides shared lipgloss styles for CLI and TUI output.
package styles

import "github.com/charmbracelet/lipgloss"

// Semantic palette. The defaults follow tokyo-night, matching the rest of
// the seller tooling the console sits next to.
var (
	ColorPrimary    = lipgloss.Color("#7aa2f7")
	ColorSecondary  = lipgloss.Color("#7dcfff")
	ColorForeground = lipgloss.Color("#c0caf5")
	ColorMuted      = lipgloss.Color("#565f89")
	ColorSurface    = lipgloss.Color("#3b4261")
	ColorSuccess    = lipgloss.Color("#9ece6a")
	ColorWarning    = lipgloss.Color("#e0af68")
	ColorError      = lipgloss.Color("#f7768e")
)

// Shared styles.
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	AssistantStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	UserStyle = lipgloss.NewStyle().
			Foreground(ColorForeground).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSurface).
			Padding(0, 1)

	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)

// StatusStyle returns the style for a task status label.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "completed":
		return SuccessStyle
	case "in-progress":
		return WarningStyle
	default:
		return SubtleStyle
	}
}
