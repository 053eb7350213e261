// Package ui holds the interactive surfaces: a raw terminal prompt and a
// directory browser that opens files through the interception policy.
package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// UI runs the browser program.
type UI struct {
	program *tea.Program
}

type promptRequest struct {
	prompt string
}

// Channels connects the policy (via ChannelPrompt) to the browser model.
type Channels struct {
	PromptReq  chan promptRequest
	PromptResp chan rune
	ReadyChan  chan struct{} // closed when the browser is ready for prompts
}

// NewChannels creates unbuffered prompt channels.
func NewChannels() *Channels {
	return &Channels{
		PromptReq:  make(chan promptRequest),
		PromptResp: make(chan rune),
		ReadyChan:  make(chan struct{}),
	}
}

// ChannelPrompt implements policy.KeyReader by showing the prompt as a popup
// in the browser and waiting for the key pressed there.
type ChannelPrompt struct {
	req  chan<- promptRequest
	resp <-chan rune
}

// NewChannelPrompt creates a ChannelPrompt over ch.
func NewChannelPrompt(ch *Channels) *ChannelPrompt {
	return &ChannelPrompt{req: ch.PromptReq, resp: ch.PromptResp}
}

// ReadKey implements policy.KeyReader.
func (p *ChannelPrompt) ReadKey(ctx context.Context, prompt string) (rune, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case p.req <- promptRequest{prompt: prompt}:
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case key := <-p.resp:
			return key, nil
		}
	}
}

// NewUI creates the browser program rooted at dir.
func NewUI(channels *Channels, deps Deps, dir string) *UI {
	model := newBrowserModel(channels, deps, dir)
	return &UI{program: tea.NewProgram(model, tea.WithAltScreen())}
}

// Start runs the browser until the user quits.
func (u *UI) Start() error {
	_, err := u.program.Run()
	return err
}
