package views

import (
	"strings"

	"github.com/Cyclone1070/vlf/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderPromptPopup renders the pending interception prompt.
func RenderPromptPopup(s models.State) string {
	if s.PendingPrompt == nil {
		return ""
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(ColorWarning).Render("Large file"),
		"",
	}
	lines = append(lines, strings.Split(s.PendingPrompt.Prompt, "\n")...)
	lines = append(lines, "", MutedStyle.Render("o: Open  v: View large  a: Abort"))

	width := s.Width - 8
	if width < 20 {
		width = 20
	}
	return PromptBoxStyle.Width(width).Render(strings.Join(lines, "\n"))
}
