package views

import (
	"github.com/Cyclone1070/vlf/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderRoot renders the complete UI layout
func RenderRoot(s models.State, helpView string) string {
	if s.PendingPrompt != nil {
		popup := RenderPromptPopup(s)
		// Overlay popup on top
		return lipgloss.Place(
			s.Width,
			s.Height,
			lipgloss.Center,
			lipgloss.Center,
			popup,
			lipgloss.WithWhitespaceChars(""),
			lipgloss.WithWhitespaceForeground(lipgloss.Color("0")),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderListing(s),
		RenderStatus(s),
		helpView,
	)
}
