package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/studiowebux/editpad/internal/cli"
	"github.com/studiowebux/editpad/internal/config"
	"github.com/studiowebux/editpad/internal/idgen"
	"github.com/studiowebux/editpad/internal/logging"
	"github.com/studiowebux/editpad/internal/store"
	"go.uber.org/zap"
)

// app holds everything a command needs, built from config and flags
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	adapter *store.Adapter
	gen     idgen.Generator
}

// openApp initializes the config directory, loads settings, applies flag
// overrides and opens the storage backend
func openApp(cmd *cobra.Command) (*app, error) {
	if flagConfigDir != "" {
		if err := config.InitializeAt(flagConfigDir); err != nil {
			return nil, fmt.Errorf("failed to initialize config: %w", err)
		}
	} else if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	cfg, err := config.Load(config.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return nil, err
	}

	logCfg := logging.DefaultConfig(cfg.Log.File)
	if cfg.Log.Level != "" {
		logCfg.Level = cfg.Log.Level
	}
	logCfg.Development = cfg.Log.Development
	logger := logging.NewOrNop(logCfg)

	gen, err := idgen.FromStrategy(cfg.IDStrategy)
	if err != nil {
		return nil, err
	}

	kv, err := store.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		return nil, err
	}
	logger.Info("storage opened",
		zap.String("backend", cfg.Backend),
		zap.String("data_dir", cfg.DataDir))

	return &app{
		cfg:     cfg,
		logger:  logger,
		adapter: store.NewAdapter(kv, store.WithLogger(logger)),
		gen:     gen,
	}, nil
}

// applyFlags overrides loaded settings with the persistent flags that were
// set on the command line
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		dir, err := config.ExpandPath(flagDataDir)
		if err != nil {
			return err
		}
		cfg.DataDir = dir
	}
	if flags.Changed("backend") {
		cfg.Backend = flagBackend
	}
	if flagEphemeral {
		cfg.Backend = store.BackendMemory
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// session opens a headless session over the app storage
func (a *app) session() *cli.Session {
	return cli.OpenSession(a.adapter, a.gen, a.logger)
}

// Close releases the storage backend and flushes the log
func (a *app) Close() {
	if err := a.adapter.Close(); err != nil {
		a.logger.Warn("failed to close storage", zap.Error(err))
	}
	_ = a.logger.Sync()
}
