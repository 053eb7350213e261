package config

import (
	"github.com/Cyclone1070/vlf/internal/mode"
	"github.com/Cyclone1070/vlf/internal/policy"
)

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Policy   PolicyConfig   `json:"policy"`
	Modes    ModesConfig    `json:"modes"`
	Commands CommandsConfig `json:"commands"`
	Listing  ListingConfig  `json:"listing"`
	UI       UIConfig       `json:"ui"`
}

type PolicyConfig struct {
	BatchSize      int64              `json:"batch_size"`      // Default: 1000000
	Threshold      *int64             `json:"threshold"`       // Default: 10000000, null disables
	Application    policy.Application `json:"application"`     // Default: ask
	ForbiddenModes []string           `json:"forbidden_modes"` // Default: archive and viewer modes
}

type ModesConfig struct {
	// Table replaces the built-in mode table when non-nil. Each entry is
	// {"pattern": "...", "mode": "..."} or has a nested {"pattern", "mode"}
	// object as its mode.
	Table            []map[string]any `json:"table"`
	CaseFoldFallback bool             `json:"case_fold_fallback"` // Default: true
	CaseSensitive    *bool            `json:"case_sensitive"`     // Default: null (platform)
}

type CommandsConfig struct {
	Editor string   `json:"editor"` // Default: "" ($EDITOR, then vi)
	Viewer string   `json:"viewer"` // Default: "less"
	Exempt []string `json:"exempt"` // Default: ["tags-verify-table"]
}

type ListingConfig struct {
	IncludeIgnored bool `json:"include_ignored"` // Default: false
	MaxEntries     int  `json:"max_entries"`     // Default: 5000
}

type UIConfig struct {
	ColorPrimary string `json:"color_primary"` // Default: "63"
	ColorWarning string `json:"color_warning"` // Default: "214"
	ColorMuted   string `json:"color_muted"`   // Default: "241"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	threshold := int64(10_000_000)
	return &Config{
		Policy: PolicyConfig{
			BatchSize:   1_000_000,
			Threshold:   &threshold,
			Application: policy.ApplicationAsk,
			ForbiddenModes: []string{
				"archive-mode",
				"tar-mode",
				"jka-compr",
				"git-commit-mode",
				"image-mode",
				"doc-view-mode",
				"doc-view-mode-maybe",
				"ebrowse-tree-mode",
			},
		},
		Modes: ModesConfig{
			CaseFoldFallback: true,
		},
		Commands: CommandsConfig{
			Viewer: "less",
			Exempt: []string{"tags-verify-table"},
		},
		Listing: ListingConfig{
			MaxEntries: 5000,
		},
		UI: UIConfig{
			ColorPrimary: "63",
			ColorWarning: "214",
			ColorMuted:   "241",
		},
	}
}

// PolicyConfig converts the policy section into the decision input.
func (c *Config) PolicyConfig() policy.Config {
	forbidden := make([]mode.ID, 0, len(c.Policy.ForbiddenModes))
	for _, name := range c.Policy.ForbiddenModes {
		forbidden = append(forbidden, mode.ID(name))
	}
	cfg := policy.Config{
		BatchSize:      c.Policy.BatchSize,
		Application:    c.Policy.Application,
		ForbiddenModes: forbidden,
	}
	if c.Policy.Threshold != nil {
		cfg.Threshold = policy.Bytes(*c.Policy.Threshold)
	}
	return cfg
}

// ModeTable compiles the configured mode table, or the built-in one when the
// config has none.
func (c *Config) ModeTable() (*mode.Table, error) {
	if c.Modes.Table == nil {
		return mode.NewTable(mode.DefaultSpecs())
	}
	specs, err := mode.DecodeSpecs(c.Modes.Table)
	if err != nil {
		return nil, err
	}
	return mode.NewTable(specs)
}

// ResolveOptions returns the mode resolution options, honouring an explicit
// case_sensitive override.
func (c *Config) ResolveOptions() mode.Options {
	opts := mode.PlatformOptions(c.Modes.CaseFoldFallback)
	if c.Modes.CaseSensitive != nil {
		opts.CaseSensitive = *c.Modes.CaseSensitive
	}
	return opts
}
