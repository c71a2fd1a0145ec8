package diagnostics

import (
	"github.com/charmbracelet/lipgloss"
)

// Emitter color palette
var (
	colorFatal     = lipgloss.Color("#DC2626") // Dark Red
	colorError     = lipgloss.Color("#EF4444") // Red
	colorWarning   = lipgloss.Color("#F59E0B") // Amber
	colorInfo      = lipgloss.Color("#06B6D4") // Cyan
	colorHint      = lipgloss.Color("#8B5CF6") // Violet
	colorGutter    = lipgloss.Color("#6B7280") // Gray
	colorLocation  = lipgloss.Color("#3B82F6") // Blue
	colorSecondary = lipgloss.Color("#3B82F6") // Blue
)

var (
	fatalStyle   = lipgloss.NewStyle().Foreground(colorFatal).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(colorHint).Bold(true)

	gutterStyle    = lipgloss.NewStyle().Foreground(colorGutter)
	locationStyle  = lipgloss.NewStyle().Foreground(colorLocation)
	secondaryStyle = lipgloss.NewStyle().Foreground(colorSecondary)

	underlineFatal   = lipgloss.NewStyle().Foreground(colorFatal)
	underlineError   = lipgloss.NewStyle().Foreground(colorError)
	underlineWarning = lipgloss.NewStyle().Foreground(colorWarning)
	underlineInfo    = lipgloss.NewStyle().Foreground(colorInfo)
	underlineHint    = lipgloss.NewStyle().Foreground(colorHint)
)

// severityStyle returns the header style for a severity
func severityStyle(s Severity) lipgloss.Style {
	switch s {
	case Fatal:
		return fatalStyle
	case Error:
		return errorStyle
	case Warning:
		return warningStyle
	case Info:
		return infoStyle
	default:
		return hintStyle
	}
}

// underlineStyle returns the caret style for a severity
func underlineStyle(s Severity) lipgloss.Style {
	switch s {
	case Fatal:
		return underlineFatal
	case Error:
		return underlineError
	case Warning:
		return underlineWarning
	case Info:
		return underlineInfo
	default:
		return underlineHint
	}
}
