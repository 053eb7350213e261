package opener

import (
	"errors"
	"fmt"
)

// ErrEmptyCommand is returned when a launcher command has no words.
var ErrEmptyCommand = errors.New("command is empty")

// StatError is returned when the target cannot be stat'ed for a reason
// other than not existing.
type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat %s: %v", e.Path, e.Cause)
}
func (e *StatError) Unwrap() error { return e.Cause }

// LaunchError is returned when the editor or viewer fails.
type LaunchError struct {
	Cmd   string
	Path  string
	Cause error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("command %s failed for %s: %v", e.Cmd, e.Path, e.Cause)
}
func (e *LaunchError) Unwrap() error { return e.Cause }

// CommandParseError is returned when a configured command line cannot be split.
type CommandParseError struct {
	Command string
	Cause   error
}

func (e *CommandParseError) Error() string {
	return fmt.Sprintf("invalid command %q: %v", e.Command, e.Cause)
}
func (e *CommandParseError) Unwrap() error { return e.Cause }
