package views

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("63")
	ColorWarning = lipgloss.Color("214")
	ColorMuted   = lipgloss.Color("241")
	ColorError   = lipgloss.Color("196")
)

var (
	HeaderStyle        lipgloss.Style
	SelectedStyle      lipgloss.Style
	DirStyle           lipgloss.Style
	LargeStyle         lipgloss.Style
	MutedStyle         lipgloss.Style
	PromptBoxStyle     lipgloss.Style
	StatusDefaultStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style
)

func init() {
	rebuildStyles()
}

// ApplyTheme replaces the palette. Empty values keep the current color.
func ApplyTheme(primary, warning, muted string) {
	if primary != "" {
		ColorPrimary = lipgloss.Color(primary)
	}
	if warning != "" {
		ColorWarning = lipgloss.Color(warning)
	}
	if muted != "" {
		ColorMuted = lipgloss.Color(muted)
	}
	rebuildStyles()
}

func rebuildStyles() {
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	SelectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	DirStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	LargeStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	PromptBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorWarning).
		Padding(1, 2)
	StatusDefaultStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	StatusErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
}
