package policy

import (
	"log/slog"
)

// Guard exempts named host commands from interception.
type Guard struct {
	settings *Settings
	exempt   map[string]struct{}
	logger   *slog.Logger
}

// NewGuard creates a Guard over settings. Commands listed in exempt run with
// the policy disabled when started through Run.
func NewGuard(settings *Settings, exempt []string, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	set := make(map[string]struct{}, len(exempt))
	for _, name := range exempt {
		set[name] = struct{}{}
	}
	return &Guard{
		settings: settings,
		exempt:   set,
		logger:   logger,
	}
}

// WithPolicyDisabled runs fn with the application level forced to never.
// The previous level is back in effect when WithPolicyDisabled returns,
// whether fn succeeds, fails or panics. Calls may nest.
func (g *Guard) WithPolicyDisabled(command string, fn func() error) error {
	g.settings.disable()
	defer g.settings.enable()

	g.logger.Debug("interception disabled", "command", command)
	return fn()
}

// Exempt reports whether command is configured to bypass interception.
func (g *Guard) Exempt(command string) bool {
	_, ok := g.exempt[command]
	return ok
}

// Run calls fn, disabling interception first if command is exempt.
func (g *Guard) Run(command string, fn func() error) error {
	if !g.Exempt(command) {
		return fn()
	}
	return g.WithPolicyDisabled(command, fn)
}
