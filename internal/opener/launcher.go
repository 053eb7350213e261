package opener

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

const fallbackEditor = "vi"

// CommandLauncher opens files by running external commands attached to the
// terminal.
type CommandLauncher struct {
	editor []string
	viewer []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// run executes the prepared command; replaced in tests.
	run func(cmd *exec.Cmd) error
}

// NewCommandLauncher parses the editor and viewer command lines. An empty
// editor falls back to $EDITOR, then vi.
func NewCommandLauncher(editor, viewer string, getenv func(string) string) (*CommandLauncher, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if editor == "" {
		editor = getenv("EDITOR")
	}
	if editor == "" {
		editor = fallbackEditor
	}

	editorArgs, err := splitCommand(editor)
	if err != nil {
		return nil, err
	}
	viewerArgs, err := splitCommand(viewer)
	if err != nil {
		return nil, err
	}

	return &CommandLauncher{
		editor: editorArgs,
		viewer: viewerArgs,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		run:    (*exec.Cmd).Run,
	}, nil
}

// Editor returns the editor argv.
func (l *CommandLauncher) Editor() []string { return append([]string(nil), l.editor...) }

// Viewer returns the viewer argv.
func (l *CommandLauncher) Viewer() []string { return append([]string(nil), l.viewer...) }

// OpenNormal opens path in the editor.
func (l *CommandLauncher) OpenNormal(ctx context.Context, path string) error {
	return l.launch(ctx, l.editor, path)
}

// OpenLarge opens path in the large-file viewer.
func (l *CommandLauncher) OpenLarge(ctx context.Context, path string) error {
	return l.launch(ctx, l.viewer, path)
}

// NormalCommand builds the editor command for path.
func (l *CommandLauncher) NormalCommand(ctx context.Context, path string) *exec.Cmd {
	return l.Command(ctx, l.editor, path)
}

// LargeCommand builds the viewer command for path.
func (l *CommandLauncher) LargeCommand(ctx context.Context, path string) *exec.Cmd {
	return l.Command(ctx, l.viewer, path)
}

// Command builds the command that would open path with argv.
func (l *CommandLauncher) Command(ctx context.Context, argv []string, path string) *exec.Cmd {
	args := append(append([]string(nil), argv[1:]...), path)
	cmd := exec.CommandContext(ctx, argv[0], args...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr
	return cmd
}

func (l *CommandLauncher) launch(ctx context.Context, argv []string, path string) error {
	if len(argv) == 0 {
		return ErrEmptyCommand
	}
	if err := l.run(l.Command(ctx, argv, path)); err != nil {
		return &LaunchError{Cmd: argv[0], Path: path, Cause: err}
	}
	return nil
}

func splitCommand(command string) ([]string, error) {
	args, err := shellquote.Split(command)
	if err != nil {
		return nil, &CommandParseError{Command: command, Cause: err}
	}
	if len(args) == 0 {
		return nil, &CommandParseError{Command: command, Cause: ErrEmptyCommand}
	}
	return args, nil
}
