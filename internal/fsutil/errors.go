package fsutil

import "fmt"

// StatError is returned when a path cannot be stat'ed.
type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat %s: %v", e.Path, e.Cause)
}

func (e *StatError) Unwrap() error {
	return e.Cause
}

// ReadError is returned when a file cannot be opened or read.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

// ListError is returned when a directory cannot be listed.
type ListError struct {
	Path  string
	Cause error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("failed to list directory %s: %v", e.Path, e.Cause)
}

func (e *ListError) Unwrap() error {
	return e.Cause
}

// InvalidLimitError is returned when a read limit is negative.
type InvalidLimitError struct {
	Value int64
}

func (e *InvalidLimitError) Error() string {
	return fmt.Sprintf("limit cannot be negative: %d", e.Value)
}
