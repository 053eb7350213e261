package main

import (
	"errors"

	"github.com/Cyclone1070/vlf/internal/policy"
)

// exitAborted is the exit status when the user aborts an open.
const exitAborted = 2

// exitCodeError carries a specific process exit status.
type exitCodeError struct {
	code  int
	cause error
}

func (e *exitCodeError) Error() string {
	if e.cause == nil {
		return ""
	}
	return e.cause.Error()
}

func (e *exitCodeError) Unwrap() error { return e.cause }

func (e *exitCodeError) ExitCode() int {
	return e.code
}

// commandExit maps an abort to its exit status and passes other errors on.
func commandExit(err error) error {
	if errors.Is(err, policy.ErrAbortedByUser) {
		return &exitCodeError{code: exitAborted, cause: err}
	}
	return err
}
