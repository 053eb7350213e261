package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Cyclone1070/vlf/internal/config"
	"github.com/Cyclone1070/vlf/internal/fsutil"
	"github.com/Cyclone1070/vlf/internal/mode"
	"github.com/Cyclone1070/vlf/internal/opener"
	"github.com/Cyclone1070/vlf/internal/policy"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds the wired components for one command invocation.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	fs       *fsutil.OSFileSystem
	resolver *mode.Resolver
	settings *policy.Settings
	guard    *policy.Guard
	launcher *opener.CommandLauncher
	closers  []io.Closer
}

// loadApp loads configuration and builds everything except the policy,
// whose key reader depends on the command.
func loadApp(cmd *cobra.Command) (*app, error) {
	a := &app{fs: fsutil.NewOSFileSystem()}

	logger, closer, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}
	a.logger = logger
	if closer != nil {
		a.closers = append(a.closers, closer)
	}

	loader := config.NewLoader()
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		a.cfg, err = loader.LoadFile(path)
	} else {
		a.cfg, err = loader.Load()
	}
	if err != nil {
		return nil, err
	}
	if err := applyOverrides(a.cfg, viper.GetViper()); err != nil {
		return nil, err
	}

	table, err := a.cfg.ModeTable()
	if err != nil {
		return nil, err
	}
	a.resolver = mode.NewResolver(table, a.cfg.ResolveOptions())
	a.settings = policy.NewSettings(a.cfg.PolicyConfig())
	a.guard = policy.NewGuard(a.settings, a.cfg.Commands.Exempt, a.logger)

	a.launcher, err = opener.NewCommandLauncher(a.cfg.Commands.Editor, a.cfg.Commands.Viewer, os.Getenv)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("configuration loaded",
		"application", a.cfg.Policy.Application.String(),
		"batch_size", a.cfg.Policy.BatchSize,
		"modes", table.Len(),
	)
	return a, nil
}

// newOpener wires a policy prompting through keys into an Opener.
func (a *app) newOpener(keys policy.KeyReader) *opener.Opener {
	p := policy.New(a.resolver, keys, a.logger)
	return opener.New(a.fs, p, a.settings, a.launcher, a.logger)
}

func (a *app) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
}

func newLogger(cmd *cobra.Command) (*slog.Logger, io.Closer, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logFile, _ := cmd.Flags().GetString("log-file")

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = cmd.ErrOrStderr()
	var closer io.Closer
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, closer, nil
}
