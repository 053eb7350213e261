package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Cyclone1070/vlf/internal/config"
	"github.com/Cyclone1070/vlf/internal/policy"
	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
)

// applyOverrides layers flag and environment values from v over cfg and
// re-validates it.
func applyOverrides(cfg *config.Config, v *viper.Viper) error {
	if s := v.GetString("policy.application"); s != "" {
		app, err := policy.ParseApplication(s)
		if err != nil {
			return err
		}
		cfg.Policy.Application = app
	}

	if s := v.GetString("policy.batch_size"); s != "" {
		n, err := parseBytes(s)
		if err != nil {
			return fmt.Errorf("invalid batch size %q: %w", s, err)
		}
		cfg.Policy.BatchSize = n
	}

	if s := v.GetString("policy.threshold"); s != "" {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "none", "null", "off":
			cfg.Policy.Threshold = nil
		default:
			n, err := parseBytes(s)
			if err != nil {
				return fmt.Errorf("invalid threshold %q: %w", s, err)
			}
			cfg.Policy.Threshold = policy.Bytes(n)
		}
	}

	if s := v.GetString("commands.editor"); s != "" {
		cfg.Commands.Editor = s
	}
	if s := v.GetString("commands.viewer"); s != "" {
		cfg.Commands.Viewer = s
	}

	return cfg.Validate()
}

// parseBytes accepts plain integers and humanized sizes such as 10MB or
// 512KiB.
func parseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, err
	}
	if n > 1<<62 {
		return 0, fmt.Errorf("size out of range")
	}
	return int64(n), nil
}
