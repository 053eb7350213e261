package ui

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/Cyclone1070/vlf/internal/listing"
	"github.com/Cyclone1070/vlf/internal/opener"
	"github.com/Cyclone1070/vlf/internal/policy"
	"github.com/Cyclone1070/vlf/internal/ui/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockLister struct {
	ListFunc func(dir string, opts listing.Options) (*listing.Listing, error)
	Dirs     []string
}

func (m *MockLister) List(_ context.Context, dir string, opts listing.Options) (*listing.Listing, error) {
	m.Dirs = append(m.Dirs, dir)
	if m.ListFunc != nil {
		return m.ListFunc(dir, opts)
	}
	return &listing.Listing{Root: dir}, nil
}

type MockOpener struct {
	DecideFunc func(req opener.Request) (policy.Action, error)
	Requests   []opener.Request
}

func (m *MockOpener) Decide(_ context.Context, req opener.Request) (policy.FileDescriptor, policy.Action, error) {
	m.Requests = append(m.Requests, req)
	action, err := m.DecideFunc(req)
	return policy.FileDescriptor{Path: req.Path}, action, err
}

type MockCommands struct{}

func (MockCommands) NormalCommand(ctx context.Context, path string) *exec.Cmd {
	return exec.CommandContext(ctx, "edit", path)
}

func (MockCommands) LargeCommand(ctx context.Context, path string) *exec.Cmd {
	return exec.CommandContext(ctx, "view", path)
}

type testHarness struct {
	model    BrowserModel
	channels *Channels
	lister   *MockLister
	opener   *MockOpener
	launched [][]string
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()
	h := &testHarness{
		channels: &Channels{
			PromptReq:  make(chan promptRequest, 1),
			PromptResp: make(chan rune, 1),
			ReadyChan:  make(chan struct{}),
		},
		lister: &MockLister{},
		opener: &MockOpener{DecideFunc: func(opener.Request) (policy.Action, error) {
			return policy.ActionProceed, nil
		}},
	}
	h.model = newBrowserModel(h.channels, Deps{
		Lister:   h.lister,
		Opener:   h.opener,
		Commands: MockCommands{},
	}, "/work")
	h.model.exec = func(cmd *exec.Cmd, fn tea.ExecCallback) tea.Cmd {
		h.launched = append(h.launched, cmd.Args)
		return func() tea.Msg { return fn(nil) }
	}
	h.model.state.Height = 24
	h.model.state.Entries = []listing.Entry{
		{Name: "src", Path: "/work/src", IsDir: true},
		{Name: "dump.sql", Path: "/work/dump.sql", Size: 50_000_000, Large: true},
		{Name: "main.go", Path: "/work/main.go", Size: 120},
	}
	return h
}

func (h *testHarness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	h.model = next.(BrowserModel)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInit_SignalsReadyAndLists(t *testing.T) {
	h := newHarness(t)

	cmd := h.model.Init()
	assert.NotNil(t, cmd)

	select {
	case <-h.channels.ReadyChan:
	default:
		t.Fatal("ready channel not closed")
	}
}

func TestUpdate_CursorMovement(t *testing.T) {
	h := newHarness(t)

	h.send(tea.KeyMsg{Type: tea.KeyDown})
	h.send(runes("j"))
	h.send(runes("j"))
	assert.Equal(t, 2, h.model.state.Cursor)

	h.send(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, h.model.state.Cursor)
}

func TestUpdate_ViewLargeBypassesPolicy(t *testing.T) {
	h := newHarness(t)
	h.model.state.Cursor = 2 // main.go, tiny

	cmd := h.send(runes("v"))
	require.NotNil(t, cmd)

	assert.Equal(t, [][]string{{"view", "/work/main.go"}}, h.launched)
	assert.Empty(t, h.opener.Requests)

	msg := cmd()
	assert.IsType(t, launchDoneMsg{}, msg)
}

func TestUpdate_ViewLargeIgnoresDirectories(t *testing.T) {
	h := newHarness(t)

	cmd := h.send(runes("v"))

	assert.Nil(t, cmd)
	assert.Empty(t, h.launched)
}

func TestUpdate_EnterRunsPolicy(t *testing.T) {
	tests := []struct {
		name       string
		action     policy.Action
		wantLaunch [][]string
	}{
		{"proceed edits", policy.ActionProceed, [][]string{{"edit", "/work/dump.sql"}}},
		{"substitute views", policy.ActionSubstitute, [][]string{{"view", "/work/dump.sql"}}},
		{"abort launches nothing", policy.ActionAbort, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.opener.DecideFunc = func(opener.Request) (policy.Action, error) { return tt.action, nil }
			h.model.state.Cursor = 1

			cmd := h.send(tea.KeyMsg{Type: tea.KeyEnter})
			require.NotNil(t, cmd)
			assert.True(t, h.model.busy)

			h.send(cmd())

			assert.False(t, h.model.busy)
			assert.Equal(t, tt.wantLaunch, h.launched)
			require.Len(t, h.opener.Requests, 1)
			assert.Equal(t, "/work/dump.sql", h.opener.Requests[0].Path)
			if tt.action == policy.ActionAbort {
				assert.Contains(t, h.model.state.StatusMessage, "aborted")
			}
		})
	}
}

func TestUpdate_EnterIgnoredWhileBusy(t *testing.T) {
	h := newHarness(t)
	h.model.state.Cursor = 1
	h.model.busy = true

	cmd := h.send(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestUpdate_DecisionError(t *testing.T) {
	h := newHarness(t)

	h.send(decisionMsg{path: "/work/dump.sql", err: &policy.PromptError{Path: "/work/dump.sql", Cause: errors.New("tty gone")}})

	assert.True(t, h.model.state.StatusIsError)
	assert.Contains(t, h.model.state.StatusMessage, "tty gone")
	assert.Empty(t, h.launched)
}

func TestUpdate_EnterDirectoryLists(t *testing.T) {
	h := newHarness(t)
	h.lister.ListFunc = func(dir string, _ listing.Options) (*listing.Listing, error) {
		return &listing.Listing{Root: dir, Entries: []listing.Entry{{Name: "main.go", Path: dir + "/main.go"}}}, nil
	}
	h.model.state.Cursor = 0

	cmd := h.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	h.send(cmd())

	assert.Equal(t, "/work/src", h.model.state.Dir)
	assert.Len(t, h.model.state.Entries, 1)
	assert.Equal(t, 0, h.model.state.Cursor)
}

func TestUpdate_ParentDirectory(t *testing.T) {
	h := newHarness(t)

	cmd := h.send(tea.KeyMsg{Type: tea.KeyBackspace})
	require.NotNil(t, cmd)
	h.send(cmd())

	assert.Equal(t, []string{"/"}, h.lister.Dirs)
	assert.Equal(t, "/", h.model.state.Dir)
}

func TestUpdate_ListingUsesSettingsThreshold(t *testing.T) {
	h := newHarness(t)
	h.model.deps.Settings = policy.NewSettings(policy.Config{
		Threshold: policy.Bytes(2048),
		BatchSize: 1024,
	})
	var got listing.Options
	h.lister.ListFunc = func(dir string, opts listing.Options) (*listing.Listing, error) {
		got = opts
		return &listing.Listing{Root: dir}, nil
	}

	cmd := h.send(runes("r"))
	require.NotNil(t, cmd)
	cmd()

	require.NotNil(t, got.Threshold)
	assert.Equal(t, int64(2048), *got.Threshold)
	assert.Equal(t, int64(1024), got.BatchSize)
}

func TestUpdate_ListingError(t *testing.T) {
	h := newHarness(t)

	h.send(listingMsg{err: errors.New("permission denied")})

	assert.True(t, h.model.state.StatusIsError)
	assert.Equal(t, "permission denied", h.model.state.StatusMessage)
}

func TestUpdate_PromptPopupForwardsKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want rune
	}{
		{"proceed", runes("o"), 'o'},
		{"view", runes("V"), 'V'},
		{"invalid forwarded", runes("x"), 'x'},
		{"escape aborts", tea.KeyMsg{Type: tea.KeyEsc}, 'a'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.send(promptRequestMsg{prompt: "File dump.sql is large"})
			require.NotNil(t, h.model.state.PendingPrompt)

			h.send(tt.msg)

			assert.Nil(t, h.model.state.PendingPrompt)
			select {
			case key := <-h.channels.PromptResp:
				assert.Equal(t, tt.want, key)
			case <-time.After(100 * time.Millisecond):
				t.Error("Timeout waiting for key")
			}
			assert.Empty(t, h.launched)
		})
	}
}

func TestUpdate_PromptPopupIgnoresOtherKeys(t *testing.T) {
	h := newHarness(t)
	h.model.state.PendingPrompt = &models.PromptRequest{Prompt: "?"}

	h.send(tea.KeyMsg{Type: tea.KeyDown})

	assert.NotNil(t, h.model.state.PendingPrompt)
	assert.Len(t, h.channels.PromptResp, 0)
}

func TestUpdate_Quit(t *testing.T) {
	h := newHarness(t)

	cmd := h.send(runes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Error(t, h.model.ctx.Err())
}

func TestUpdate_HelpToggle(t *testing.T) {
	h := newHarness(t)

	h.send(runes("?"))
	assert.True(t, h.model.state.ShowHelp)
	assert.Contains(t, h.model.View(), "view large")
}

func TestUpdate_WindowResizeScrolls(t *testing.T) {
	h := newHarness(t)
	h.model.state.Cursor = 2

	h.send(tea.WindowSizeMsg{Width: 80, Height: 5})

	assert.Equal(t, 2, h.model.state.Offset)
	assert.Equal(t, 80, h.model.state.Width)
}
