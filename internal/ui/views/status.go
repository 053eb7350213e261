package views

import "github.com/Cyclone1070/vlf/internal/ui/models"

// RenderStatus renders the status bar
func RenderStatus(s models.State) string {
	if s.StatusMessage == "" {
		return StatusDefaultStyle.Render("Ready")
	}
	if s.StatusIsError {
		return StatusErrorStyle.Render("✘ " + s.StatusMessage)
	}
	return StatusDefaultStyle.Render(s.StatusMessage)
}
