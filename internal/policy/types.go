package policy

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Cyclone1070/vlf/internal/mode"
)

// Action is the outcome of an interception decision.
type Action int

const (
	// ActionProceed opens the file normally.
	ActionProceed Action = iota
	// ActionSubstitute cancels the original open and opens the file with the
	// large-file viewer instead.
	ActionSubstitute
	// ActionAbort cancels the original open with no substitute.
	ActionAbort
)

func (a Action) String() string {
	switch a {
	case ActionProceed:
		return "proceed"
	case ActionSubstitute:
		return "substitute"
	case ActionAbort:
		return "abort"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Err converts an action into the error a caller should use to cancel its
// pending open. Proceed yields nil.
func (a Action) Err() error {
	switch a {
	case ActionSubstitute:
		return ErrSubstituted
	case ActionAbort:
		return ErrAbortedByUser
	default:
		return nil
	}
}

// Application controls when interception is offered.
type Application int

const (
	ApplicationNever Application = iota
	ApplicationAsk
	ApplicationDontAsk
	ApplicationAlways
)

var applicationNames = []string{"never", "ask", "dont-ask", "always"}

func (a Application) String() string {
	if a < 0 || int(a) >= len(applicationNames) {
		return fmt.Sprintf("Application(%d)", int(a))
	}
	return applicationNames[a]
}

// ParseApplication parses one of never, ask, dont-ask or always.
func ParseApplication(s string) (Application, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, name := range applicationNames {
		if name == normalized {
			return Application(i), nil
		}
	}
	return ApplicationNever, &UnknownApplicationError{Value: s}
}

// MarshalText implements encoding.TextMarshaler.
func (a Application) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(applicationNames) {
		return nil, &UnknownApplicationError{Value: a.String()}
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Application) UnmarshalText(text []byte) error {
	parsed, err := ParseApplication(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Config is the interception policy configuration.
type Config struct {
	// Threshold is the host warning threshold in bytes. Nil disables
	// size-based interception.
	Threshold *int64
	// BatchSize is the viewer's chunk size in bytes; files must exceed it to
	// be intercepted.
	BatchSize      int64
	Application    Application
	ForbiddenModes []mode.ID
}

// Validate rejects configurations the decision logic cannot honour.
func (c Config) Validate() error {
	if c.BatchSize <= 0 {
		return &InvalidConfigError{Field: "batch_size", Reason: fmt.Sprintf("must be > 0, got %d", c.BatchSize)}
	}
	if c.Threshold != nil && *c.Threshold < 0 {
		return &InvalidConfigError{Field: "threshold", Reason: fmt.Sprintf("must be >= 0, got %d", *c.Threshold)}
	}
	if c.Application < ApplicationNever || c.Application > ApplicationAlways {
		return &InvalidConfigError{Field: "application", Reason: fmt.Sprintf("unknown value %d", int(c.Application))}
	}
	return nil
}

// Forbidden reports whether id is excluded from interception.
func (c Config) Forbidden(id mode.ID) bool {
	return slices.Contains(c.ForbiddenModes, id)
}

// Clone returns a deep copy.
func (c Config) Clone() Config {
	out := c
	if c.Threshold != nil {
		threshold := *c.Threshold
		out.Threshold = &threshold
	}
	out.ForbiddenModes = slices.Clone(c.ForbiddenModes)
	return out
}

// FileDescriptor describes the file about to be opened.
type FileDescriptor struct {
	Path string
	// RemotePrefix is the remote-location prefix of Path, if the caller
	// already knows it. Empty means detect it from Path.
	RemotePrefix string
	// Size is nil when unknown. Nil and zero both mean no interception.
	Size *int64
	// DeclaredMode skips resolution when set.
	DeclaredMode *mode.ID
	// Operation names what the caller is attempting, e.g. "open" or
	// "insert". Empty means "open".
	Operation string
}

// Bytes returns a pointer to n, for FileDescriptor.Size and Config.Threshold.
func Bytes(n int64) *int64 {
	return &n
}

// Mode returns a pointer to id, for FileDescriptor.DeclaredMode.
func Mode(id mode.ID) *mode.ID {
	return &id
}
