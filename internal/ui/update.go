package ui

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/Cyclone1070/vlf/internal/listing"
	"github.com/Cyclone1070/vlf/internal/opener"
	"github.com/Cyclone1070/vlf/internal/policy"
	"github.com/Cyclone1070/vlf/internal/ui/models"
	"github.com/Cyclone1070/vlf/internal/ui/views"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type dirLister interface {
	List(ctx context.Context, dir string, opts listing.Options) (*listing.Listing, error)
}

type openDecider interface {
	Decide(ctx context.Context, req opener.Request) (policy.FileDescriptor, policy.Action, error)
}

type commandBuilder interface {
	NormalCommand(ctx context.Context, path string) *exec.Cmd
	LargeCommand(ctx context.Context, path string) *exec.Cmd
}

// Deps are the browser's collaborators.
type Deps struct {
	Lister   dirLister
	Opener   openDecider
	Commands commandBuilder
	// Settings supplies the threshold used to flag large entries.
	Settings    *policy.Settings
	ListOptions listing.Options
}

type execFunc func(cmd *exec.Cmd, fn tea.ExecCallback) tea.Cmd

// BrowserModel implements tea.Model
type BrowserModel struct {
	state models.State
	keys  keyMap
	deps  Deps

	ctx    context.Context
	cancel context.CancelFunc
	exec   execFunc
	busy   bool // a decision is in flight

	// Channels for communication with the policy prompt
	promptReq  <-chan promptRequest
	promptResp chan<- rune

	// Ready signal
	readyChan chan<- struct{}
}

func newBrowserModel(channels *Channels, deps Deps, dir string) BrowserModel {
	ctx, cancel := context.WithCancel(context.Background())
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return BrowserModel{
		state: models.State{
			Dir:  dir,
			Help: help.New(),
		},
		keys:       defaultKeyMap(),
		deps:       deps,
		ctx:        ctx,
		cancel:     cancel,
		exec:       tea.ExecProcess,
		promptReq:  channels.PromptReq,
		promptResp: channels.PromptResp,
		readyChan:  channels.ReadyChan,
	}
}

// Internal messages
type promptRequestMsg promptRequest

type listingMsg struct {
	listing *listing.Listing
	err     error
}

type decisionMsg struct {
	path   string
	action policy.Action
	err    error
}

type launchDoneMsg struct {
	path string
	err  error
}

// Init initializes the model
func (m BrowserModel) Init() tea.Cmd {
	// Signal that UI is ready
	if m.readyChan != nil {
		close(m.readyChan)
	}

	return tea.Batch(
		m.loadDir(m.state.Dir),
		listenForPromptRequests(m.promptReq),
	)
}

// View renders the UI
func (m BrowserModel) View() string {
	return views.RenderRoot(m.state, m.state.Help.View(m.keys))
}

// Update handles messages
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.state.Help.Width = msg.Width
		m.scrollToCursor()

	case promptRequestMsg:
		m.state.PendingPrompt = &models.PromptRequest{Prompt: msg.prompt}
		return m, listenForPromptRequests(m.promptReq)

	case listingMsg:
		if msg.err != nil {
			m.setError(msg.err.Error())
			return m, nil
		}
		changed := msg.listing.Root != m.state.Dir
		m.state.Dir = msg.listing.Root
		m.state.Entries = msg.listing.Entries
		m.state.Truncated = msg.listing.Truncated
		if changed {
			m.state.Cursor = 0
			m.state.Offset = 0
		}
		m.clampCursor()

	case decisionMsg:
		m.busy = false
		return m.handleDecision(msg)

	case launchDoneMsg:
		if msg.err != nil {
			m.setError(msg.err.Error())
		} else {
			m.setStatus("closed " + filepath.Base(msg.path))
		}
		return m, m.loadDir(m.state.Dir)
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m BrowserModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle interception prompts; every key is forwarded and the policy
	// re-asks on anything it does not recognise.
	if m.state.PendingPrompt != nil {
		var answer rune
		switch {
		case msg.Type == tea.KeyEsc || msg.Type == tea.KeyCtrlC:
			answer = policy.KeyAbort
		case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
			answer = msg.Runes[0]
		default:
			return m, nil
		}
		m.state.PendingPrompt = nil
		m.promptResp <- answer
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Help):
		m.state.ShowHelp = !m.state.ShowHelp
		m.state.Help.ShowAll = m.state.ShowHelp

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadDir(m.state.Dir)

	case key.Matches(msg, m.keys.Parent):
		parent := filepath.Dir(m.state.Dir)
		if parent == m.state.Dir {
			return m, nil
		}
		return m, m.loadDir(parent)

	case key.Matches(msg, m.keys.Open):
		entry, ok := m.state.Selected()
		if !ok {
			return m, nil
		}
		if entry.IsDir {
			return m, m.loadDir(entry.Path)
		}
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.setStatus("checking " + entry.Name)
		return m, m.decide(entry.Path)

	case key.Matches(msg, m.keys.ViewLarge):
		entry, ok := m.state.Selected()
		if !ok || entry.IsDir {
			return m, nil
		}
		m.setStatus("viewing " + entry.Name)
		return m, m.launch(entry.Path, m.deps.Commands.LargeCommand(m.ctx, entry.Path))
	}

	return m, nil
}

func (m BrowserModel) handleDecision(msg decisionMsg) (tea.Model, tea.Cmd) {
	name := filepath.Base(msg.path)
	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return m, nil
		}
		m.setError(msg.err.Error())
		return m, nil
	}

	switch msg.action {
	case policy.ActionAbort:
		m.setStatus(fmt.Sprintf("%s: %v", name, policy.ErrAbortedByUser))
		return m, nil
	case policy.ActionSubstitute:
		m.setStatus("viewing " + name)
		return m, m.launch(msg.path, m.deps.Commands.LargeCommand(m.ctx, msg.path))
	default:
		m.setStatus("editing " + name)
		return m, m.launch(msg.path, m.deps.Commands.NormalCommand(m.ctx, msg.path))
	}
}

func (m *BrowserModel) moveCursor(delta int) {
	m.state.Cursor += delta
	m.clampCursor()
}

func (m *BrowserModel) clampCursor() {
	if m.state.Cursor >= len(m.state.Entries) {
		m.state.Cursor = len(m.state.Entries) - 1
	}
	if m.state.Cursor < 0 {
		m.state.Cursor = 0
	}
	m.scrollToCursor()
}

func (m *BrowserModel) scrollToCursor() {
	rows := m.state.VisibleRows()
	if m.state.Cursor < m.state.Offset {
		m.state.Offset = m.state.Cursor
	}
	if m.state.Cursor >= m.state.Offset+rows {
		m.state.Offset = m.state.Cursor - rows + 1
	}
}

func (m *BrowserModel) setStatus(text string) {
	m.state.StatusMessage = text
	m.state.StatusIsError = false
}

func (m *BrowserModel) setError(text string) {
	m.state.StatusMessage = text
	m.state.StatusIsError = true
}

func (m BrowserModel) loadDir(dir string) tea.Cmd {
	ctx := m.ctx
	deps := m.deps
	return func() tea.Msg {
		opts := deps.ListOptions
		if deps.Settings != nil {
			cfg := deps.Settings.Snapshot()
			opts.Threshold = cfg.Threshold
			opts.BatchSize = cfg.BatchSize
		}
		l, err := deps.Lister.List(ctx, dir, opts)
		return listingMsg{listing: l, err: err}
	}
}

func (m BrowserModel) decide(path string) tea.Cmd {
	ctx := m.ctx
	o := m.deps.Opener
	return func() tea.Msg {
		_, action, err := o.Decide(ctx, opener.Request{Path: path})
		return decisionMsg{path: path, action: action, err: err}
	}
}

func (m BrowserModel) launch(path string, cmd *exec.Cmd) tea.Cmd {
	return m.exec(cmd, func(err error) tea.Msg {
		return launchDoneMsg{path: path, err: err}
	})
}

// Helper commands for listening to channels
func listenForPromptRequests(ch <-chan promptRequest) tea.Cmd {
	return func() tea.Msg {
		return promptRequestMsg(<-ch)
	}
}
