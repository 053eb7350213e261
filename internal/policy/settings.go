package policy

import "sync"

// Settings owns the process-wide policy configuration. It is safe for
// concurrent use.
type Settings struct {
	mu       sync.RWMutex
	cfg      Config
	disabled int // active WithPolicyDisabled scopes
}

// NewSettings creates Settings holding a copy of cfg.
func NewSettings(cfg Config) *Settings {
	return &Settings{cfg: cfg.Clone()}
}

// Snapshot returns the effective configuration. While any guard scope is
// active the application level reads as never.
func (s *Settings) Snapshot() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg := s.cfg.Clone()
	if s.disabled > 0 {
		cfg.Application = ApplicationNever
	}
	return cfg
}

// Application returns the effective application level.
func (s *Settings) Application() Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.disabled > 0 {
		return ApplicationNever
	}
	return s.cfg.Application
}

// SetApplication changes the configured application level and returns the
// previous one.
func (s *Settings) SetApplication(a Application) Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.cfg.Application
	s.cfg.Application = a
	return prev
}

// Update applies fn to the stored configuration under the write lock.
func (s *Settings) Update(fn func(cfg *Config)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.cfg)
}

func (s *Settings) disable() {
	s.mu.Lock()
	s.disabled++
	s.mu.Unlock()
}

func (s *Settings) enable() {
	s.mu.Lock()
	if s.disabled > 0 {
		s.disabled--
	}
	s.mu.Unlock()
}
