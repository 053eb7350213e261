package listing

import (
	"errors"
	"fmt"
)

// ErrNotDirectory is returned when the listed path is not a directory.
var ErrNotDirectory = errors.New("path is not a directory")

// GitignoreReadError is returned when .gitignore cannot be read.
type GitignoreReadError struct {
	Path  string
	Cause error
}

func (e *GitignoreReadError) Error() string {
	return fmt.Sprintf("failed to read .gitignore at %s: %v", e.Path, e.Cause)
}
func (e *GitignoreReadError) Unwrap() error { return e.Cause }
