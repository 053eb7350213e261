// Package opener is the host open pipeline: it asks the interception policy
// what to do with a file and hands the file to the editor or the large-file
// viewer accordingly.
package opener

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Cyclone1070/vlf/internal/mode"
	"github.com/Cyclone1070/vlf/internal/policy"
)

// Launcher opens a file for the user.
type Launcher interface {
	OpenNormal(ctx context.Context, path string) error
	OpenLarge(ctx context.Context, path string) error
}

type statter interface {
	Stat(path string) (os.FileInfo, error)
}

type decider interface {
	Decide(ctx context.Context, fd policy.FileDescriptor, cfg policy.Config) (policy.Action, error)
}

// Request describes one open attempt.
type Request struct {
	Path string
	// Operation defaults to "open".
	Operation string
	// Mode overrides mode resolution when set.
	Mode *mode.ID
}

// Opener routes open requests through the policy.
type Opener struct {
	fs       statter
	decider  decider
	settings *policy.Settings
	launcher Launcher
	logger   *slog.Logger
}

// New creates an Opener. A nil logger uses slog.Default().
func New(fs statter, decider decider, settings *policy.Settings, launcher Launcher, logger *slog.Logger) *Opener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Opener{
		fs:       fs,
		decider:  decider,
		settings: settings,
		launcher: launcher,
		logger:   logger,
	}
}

// Open is shorthand for OpenFile with a path and operation.
func (o *Opener) Open(ctx context.Context, path, operation string) (policy.Action, error) {
	return o.OpenFile(ctx, Request{Path: path, Operation: operation})
}

// OpenFile decides how to open req.Path and does it. An abort returns
// policy.ErrAbortedByUser and launches nothing.
func (o *Opener) OpenFile(ctx context.Context, req Request) (policy.Action, error) {
	fd, action, err := o.Decide(ctx, req)
	if err != nil {
		return action, err
	}

	switch action {
	case policy.ActionSubstitute:
		o.logger.Info("opening with large file viewer", "path", fd.Path)
		return action, o.launcher.OpenLarge(ctx, fd.Path)
	case policy.ActionAbort:
		o.logger.Info("open aborted", "path", fd.Path)
		return action, policy.ErrAbortedByUser
	default:
		return action, o.launcher.OpenNormal(ctx, fd.Path)
	}
}

// Decide describes req and runs the policy on it under the current
// settings, without launching anything.
func (o *Opener) Decide(ctx context.Context, req Request) (policy.FileDescriptor, policy.Action, error) {
	fd, err := o.Describe(req)
	if err != nil {
		return fd, policy.ActionAbort, err
	}

	action, err := o.decider.Decide(ctx, fd, o.settings.Snapshot())
	if err != nil {
		return fd, policy.ActionAbort, err
	}
	return fd, action, nil
}

// OpenLarge opens path with the large-file viewer without consulting the
// policy.
func (o *Opener) OpenLarge(ctx context.Context, path string) error {
	return o.launcher.OpenLarge(ctx, path)
}

// Describe builds the FileDescriptor for req. Files that do not exist yet
// get no size, so they are never intercepted.
func (o *Opener) Describe(req Request) (policy.FileDescriptor, error) {
	fd := policy.FileDescriptor{
		Path:         req.Path,
		DeclaredMode: req.Mode,
		Operation:    req.Operation,
	}

	prefix := mode.RemotePrefix(req.Path)
	if prefix != "" {
		fd.RemotePrefix = prefix
		return fd, nil
	}

	if abs, err := filepath.Abs(req.Path); err == nil {
		fd.Path = abs
	}

	info, err := o.fs.Stat(fd.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fd, nil
		}
		return fd, &StatError{Path: fd.Path, Cause: err}
	}
	if info.Mode().IsRegular() {
		fd.Size = policy.Bytes(info.Size())
	}
	return fd, nil
}
