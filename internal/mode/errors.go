package mode

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrPatternRequired = errors.New("pattern is required")
	ErrModeRequired    = errors.New("mode is required")
)

// PatternError is returned when a mode table entry cannot be compiled.
type PatternError struct {
	Index   int
	Pattern string
	Cause   error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("mode table entry %d: invalid pattern %q: %v", e.Index, e.Pattern, e.Cause)
}

func (e *PatternError) Unwrap() error {
	return e.Cause
}

// SpecDecodeError is returned when a raw table entry has the wrong shape.
type SpecDecodeError struct {
	Index int
	Cause error
}

func (e *SpecDecodeError) Error() string {
	return fmt.Sprintf("mode table entry %d: %v", e.Index, e.Cause)
}

func (e *SpecDecodeError) Unwrap() error {
	return e.Cause
}
