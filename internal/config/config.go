package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755
)

var (
	// ConfigDir is the global configuration directory (~/.editpad)
	ConfigDir string

	// ConfigFile is the optional YAML settings file
	ConfigFile string

	// KeybindsFile holds user keybinding overrides
	KeybindsFile string

	// LogFile receives the zap output while the TUI owns the terminal
	LogFile string

	// ExportDir is where exported tabs are written by default
	ExportDir string
)

// Initialize sets up the configuration directory under the user's home.
// It creates ~/.editpad/ if it doesn't exist
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	return InitializeAt(filepath.Join(homeDir, ".editpad"))
}

// InitializeAt sets the global paths relative to dir and creates it
func InitializeAt(dir string) error {
	ConfigDir = dir
	ConfigFile = filepath.Join(ConfigDir, "config.yaml")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")
	LogFile = filepath.Join(ConfigDir, "editpad.log")
	ExportDir = filepath.Join(ConfigDir, "exports")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}
	return nil
}

// ExpandPath resolves ~/ against the home directory and relative paths
// against ConfigDir
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	// Expand tilde to home directory
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, strings.TrimPrefix(path[1:], "/"))
	}

	if filepath.IsAbs(path) {
		return path, nil
	}
	return filepath.Join(ConfigDir, path), nil
}

// EnsureDir creates dir with DirPermissions
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
