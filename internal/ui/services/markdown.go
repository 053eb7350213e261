package services

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for a given terminal width.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders markdown with glamour.
type GlamourRenderer struct {
	// Style is a glamour standard style name; empty picks one from the
	// terminal background.
	Style string
}

// Render implements MarkdownRenderer.
func (g GlamourRenderer) Render(content string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if g.Style != "" {
		opts = append(opts, glamour.WithStandardStyle(g.Style))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(content)
}

// PlainRenderer returns content unchanged.
type PlainRenderer struct{}

// Render implements MarkdownRenderer.
func (PlainRenderer) Render(content string, _ int) (string, error) {
	return content, nil
}

// RenderMarkdown renders content, falling back to the raw text when the
// renderer fails.
func RenderMarkdown(content string, width int, renderer MarkdownRenderer) string {
	if width <= 0 {
		width = 80
	}
	out, err := renderer.Render(content, width)
	if err != nil {
		return content
	}
	return out
}
