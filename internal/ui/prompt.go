package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ErrInterrupted is returned when the user presses Ctrl-C or Ctrl-G at a
// terminal prompt.
var ErrInterrupted = errors.New("prompt interrupted")

const (
	keyCtrlC = 0x03
	keyCtrlG = 0x07
)

type keyResult struct {
	key rune
	err error
}

// TerminalPrompt reads single keystrokes from a terminal. When the input is
// not a terminal it reads the first character of each line instead.
type TerminalPrompt struct {
	fd     int
	tty    bool
	reader *bufio.Reader
	out    io.Writer
	style  lipgloss.Style

	// pending carries a read that outlived a cancelled ReadKey; the next
	// call picks it up instead of starting a second reader.
	pending chan keyResult
}

// NewTerminalPrompt creates a prompt reading from in and writing to out.
func NewTerminalPrompt(in *os.File, out io.Writer) *TerminalPrompt {
	fd := int(in.Fd())
	return &TerminalPrompt{
		fd:     fd,
		tty:    term.IsTerminal(fd),
		reader: bufio.NewReader(in),
		out:    out,
		style:  lipgloss.NewStyle().Bold(true),
	}
}

func newLinePrompt(in io.Reader, out io.Writer) *TerminalPrompt {
	return &TerminalPrompt{
		fd:     -1,
		reader: bufio.NewReader(in),
		out:    out,
		style:  lipgloss.NewStyle(),
	}
}

// ReadKey implements policy.KeyReader.
func (p *TerminalPrompt) ReadKey(ctx context.Context, prompt string) (rune, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	fmt.Fprint(p.out, p.style.Render(prompt)+" ")

	if p.tty {
		state, err := term.MakeRaw(p.fd)
		if err != nil {
			return 0, fmt.Errorf("failed to set raw mode: %w", err)
		}
		defer term.Restore(p.fd, state)
	}

	if p.pending == nil {
		p.pending = make(chan keyResult, 1)
		go p.read(p.pending)
	}

	select {
	case <-ctx.Done():
		p.newline()
		return 0, ctx.Err()
	case res := <-p.pending:
		p.pending = nil
		if res.err == nil && p.tty {
			fmt.Fprintf(p.out, "%c", res.key)
		}
		p.newline()
		return res.key, res.err
	}
}

func (p *TerminalPrompt) read(out chan<- keyResult) {
	key, _, err := p.reader.ReadRune()
	if err != nil {
		out <- keyResult{err: err}
		return
	}
	if !p.tty && key != '\n' {
		// Discard the rest of the line.
		if _, err := p.reader.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
			out <- keyResult{err: err}
			return
		}
	}
	if key == keyCtrlC || key == keyCtrlG {
		out <- keyResult{err: ErrInterrupted}
		return
	}
	out <- keyResult{key: key}
}

func (p *TerminalPrompt) newline() {
	if p.tty {
		fmt.Fprint(p.out, "\r\n")
		return
	}
	fmt.Fprintln(p.out)
}
