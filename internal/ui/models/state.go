package models

import (
	"github.com/Cyclone1070/vlf/internal/listing"
	"github.com/charmbracelet/bubbles/help"
)

// PromptRequest is an interception prompt waiting for a key.
type PromptRequest struct {
	Prompt string
}

// State holds all UI state
type State struct {
	// Directory being shown
	Dir       string
	Entries   []listing.Entry
	Truncated bool
	Cursor    int
	Offset    int // first visible row

	// Pending interception prompt
	PendingPrompt *PromptRequest

	// Status bar
	StatusMessage string
	StatusIsError bool

	// Help
	Help     help.Model
	ShowHelp bool

	// Dimensions
	Width  int
	Height int
}

// Selected returns the entry under the cursor.
func (s State) Selected() (listing.Entry, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Entries) {
		return listing.Entry{}, false
	}
	return s.Entries[s.Cursor], true
}

// VisibleRows is the number of listing rows that fit on screen.
func (s State) VisibleRows() int {
	rows := s.Height - 4 // header, status, help
	if rows < 1 {
		return 1
	}
	return rows
}
