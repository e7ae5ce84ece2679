package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/paintrack/internal/config"
	"github.com/roach88/paintrack/internal/store"
	"github.com/roach88/paintrack/internal/tracker"
)

// app bundles everything a command needs once flags are resolved.
type app struct {
	cfg     config.Config
	store   *store.Store
	tracker *tracker.Tracker
	out     *OutputFormatter
}

// openApp resolves config, opens the database and loads the tracker.
// Callers must defer a.close().
func openApp(ctx context.Context, opts *RootOptions, cmd *cobra.Command) (*app, error) {
	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	dbPath := opts.Database
	if dbPath == "" {
		dbPath = cfg.Database
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to create database directory", err)
	}

	slog.Debug("opening database", "path", dbPath)
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	tr, err := tracker.Open(ctx, st, opts.Clock, slog.Default())
	if err != nil {
		st.Close()
		return nil, WrapExitError(ExitCommandError, "failed to load pain log", err)
	}

	return &app{
		cfg:     cfg,
		store:   st,
		tracker: tr,
		out: &OutputFormatter{
			Format:  opts.Format,
			Writer:  cmd.OutOrStdout(),
			Verbose: opts.Verbose,
		},
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		slog.Error("error closing database", "error", err)
	}
}
