package config

import (
	"fmt"

	"github.com/Cyclone1070/vlf/internal/policy"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	// Policy validation
	if c.Policy.BatchSize < 1 {
		errs = append(errs, "policy.batch_size must be >= 1")
	}
	if c.Policy.Threshold != nil && *c.Policy.Threshold < 0 {
		errs = append(errs, "policy.threshold must be >= 0 or null")
	}
	if c.Policy.Application < policy.ApplicationNever || c.Policy.Application > policy.ApplicationAlways {
		errs = append(errs, "policy.application must be one of never, ask, dont-ask, always")
	}

	// Modes validation
	if _, err := c.ModeTable(); err != nil {
		errs = append(errs, fmt.Sprintf("modes.table: %v", err))
	}

	// Commands validation
	if c.Commands.Viewer == "" {
		errs = append(errs, "commands.viewer must not be empty")
	}

	// Listing validation
	if c.Listing.MaxEntries < 1 {
		errs = append(errs, "listing.max_entries must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
