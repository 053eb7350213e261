// Package policy decides whether a file about to be opened should open
// normally, be handed to the large-file viewer, or be cancelled.
package policy

import (
	"context"
	"log/slog"

	"github.com/Cyclone1070/vlf/internal/mode"
)

// Resolver finds the editing mode for a file name.
type Resolver interface {
	Resolve(name string) (mode.ID, bool)
}

// Policy implements the interception decision.
type Policy struct {
	resolver Resolver
	keys     KeyReader
	logger   *slog.Logger
}

// New creates a Policy. keys may be nil when the application level never
// asks; a nil logger uses slog.Default().
func New(resolver Resolver, keys KeyReader, logger *slog.Logger) *Policy {
	if logger == nil {
		logger = slog.Default()
	}
	return &Policy{
		resolver: resolver,
		keys:     keys,
		logger:   logger,
	}
}

// Decide picks the action for fd under cfg. The first applicable rule wins:
//
//  1. unknown or zero size: proceed
//  2. application never, no path, or forbidden mode: proceed
//  3. application always: substitute
//  4. no threshold, or size within threshold or batch size: proceed
//  5. application dont-ask: substitute
//  6. ask the user
//
// The only error is a failure of the prompt surface; ActionAbort is a normal
// result.
func (p *Policy) Decide(ctx context.Context, fd FileDescriptor, cfg Config) (Action, error) {
	action, rule, err := p.decide(ctx, fd, cfg)
	if err != nil {
		p.logger.Warn("interception prompt failed", "path", fd.Path, "error", err)
		return action, err
	}
	p.logger.Debug("interception decision",
		"path", fd.Path,
		"action", action.String(),
		"rule", rule,
		"application", cfg.Application.String(),
	)
	return action, nil
}

func (p *Policy) decide(ctx context.Context, fd FileDescriptor, cfg Config) (Action, string, error) {
	if fd.Size == nil || *fd.Size == 0 {
		return ActionProceed, "no-size", nil
	}
	size := *fd.Size

	if cfg.Application == ApplicationNever {
		return ActionProceed, "never", nil
	}
	if fd.Path == "" {
		return ActionProceed, "no-path", nil
	}
	if id, ok := p.modeOf(fd); ok && cfg.Forbidden(id) {
		return ActionProceed, "forbidden-mode", nil
	}

	if cfg.Application == ApplicationAlways {
		return ActionSubstitute, "always", nil
	}

	if cfg.Threshold == nil || size <= *cfg.Threshold || size <= cfg.BatchSize {
		return ActionProceed, "below-threshold", nil
	}

	if cfg.Application == ApplicationDontAsk {
		return ActionSubstitute, "dont-ask", nil
	}

	if p.keys == nil {
		return ActionProceed, "no-prompt", nil
	}
	action, err := ask(ctx, p.keys, fd.Path, PromptMessage(fd.Path, size, fd.Operation))
	return action, "ask", err
}

func (p *Policy) modeOf(fd FileDescriptor) (mode.ID, bool) {
	if fd.DeclaredMode != nil {
		return *fd.DeclaredMode, true
	}
	if p.resolver == nil {
		return "", false
	}
	return p.resolver.Resolve(mode.TrimRemote(fd.Path, fd.RemotePrefix))
}
