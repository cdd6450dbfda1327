package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/studiowebux/editpad/internal/idgen"
	"github.com/studiowebux/editpad/internal/store"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides, e.g. EDITPAD_BACKEND
const EnvPrefix = "editpad"

// Config holds the runtime settings
type Config struct {
	Backend     string    `yaml:"backend" envconfig:"backend"`
	DataDir     string    `yaml:"data_dir" envconfig:"data_dir"`
	SaveDelayMS int       `yaml:"save_delay_ms" envconfig:"save_delay_ms"`
	IDStrategy  string    `yaml:"id_strategy" envconfig:"id_strategy"`
	ExportDir   string    `yaml:"export_dir" envconfig:"export_dir"`
	Mouse       bool      `yaml:"mouse" envconfig:"mouse"`
	Log         LogConfig `yaml:"log" envconfig:"log"`
}

// LogConfig configures the log file
type LogConfig struct {
	Level       string `yaml:"level" envconfig:"level"`
	Development bool   `yaml:"development" envconfig:"development"`
	File        string `yaml:"file" envconfig:"file"`
}

// Default returns the built-in settings. Paths come from the last
// Initialize call.
func Default() Config {
	return Config{
		Backend:     store.BackendSQLite,
		DataDir:     ConfigDir,
		SaveDelayMS: 500,
		IDStrategy:  idgen.StrategyUUIDv4,
		ExportDir:   ExportDir,
		Mouse:       true,
		Log: LogConfig{
			Level: "info",
			File:  LogFile,
		},
	}
}

// Load applies, in order, the defaults, the YAML file at path (skipped when
// it does not exist) and EDITPAD_* environment variables, then validates the
// result
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.resolvePaths(); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) resolvePaths() error {
	for _, p := range []*string{&c.DataDir, &c.ExportDir, &c.Log.File} {
		expanded, err := ExpandPath(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	if !slices.Contains(store.Backends(), c.Backend) {
		return fmt.Errorf("invalid backend %q (want one of %v)", c.Backend, store.Backends())
	}
	if _, err := idgen.FromStrategy(c.IDStrategy); err != nil {
		return fmt.Errorf("invalid id_strategy: %w", err)
	}
	if c.SaveDelayMS <= 0 {
		return fmt.Errorf("save_delay_ms must be positive, got %d", c.SaveDelayMS)
	}
	if c.Backend != store.BackendMemory && c.DataDir == "" {
		return fmt.Errorf("data_dir is required for the %s backend", c.Backend)
	}
	return nil
}

// SaveDelay returns the debounce quiet period
func (c Config) SaveDelay() time.Duration {
	return time.Duration(c.SaveDelayMS) * time.Millisecond
}
