package policy

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	// ErrAbortedByUser means the open must be cancelled with no substitute.
	ErrAbortedByUser = errors.New("open aborted by user")
	// ErrSubstituted means the open was handed to the large-file viewer.
	ErrSubstituted = errors.New("open substituted by large-file viewer")

	// errInvalidPromptInput triggers a re-prompt and never reaches callers.
	errInvalidPromptInput = errors.New("invalid prompt input")
)

// PromptError is returned when the prompt surface fails to deliver a key.
type PromptError struct {
	Path  string
	Cause error
}

func (e *PromptError) Error() string {
	return fmt.Sprintf("failed to read prompt response for %s: %v", e.Path, e.Cause)
}

func (e *PromptError) Unwrap() error {
	return e.Cause
}

// UnknownApplicationError is returned for an unrecognised application name.
type UnknownApplicationError struct {
	Value string
}

func (e *UnknownApplicationError) Error() string {
	return fmt.Sprintf("unknown application %q (want never, ask, dont-ask or always)", e.Value)
}

// InvalidConfigError reports a policy configuration value out of range.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid policy config: %s %s", e.Field, e.Reason)
}
