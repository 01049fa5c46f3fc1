// Package paths resolves configuration and data locations for the
// partshelf CLI across platforms.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DBFileName is the catalog database file created inside the data
// directory.
const DBFileName = "catalog.db"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "PARTSHELF_CONFIG_DIR"
	EnvDataDir   = "PARTSHELF_DATA_DIR"
)

// appDirName is the per-user directory name under the platform config and
// data roots.
const appDirName = "partshelf"

// platformDir holds platform-detection functions that can be overridden in
// tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration
// directory.
//
// Linux:   $XDG_CONFIG_HOME/partshelf (fallback ~/.config/partshelf)
// macOS:   ~/Library/Application Support/partshelf
// Windows: %APPDATA%/partshelf
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// DefaultDataDir returns the platform-specific default data directory
// holding the catalog database.
//
// Linux:   $XDG_DATA_HOME/partshelf (fallback ~/.local/share/partshelf)
// macOS:   ~/Library/Application Support/partshelf
// Windows: %APPDATA%/partshelf
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", appDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > PARTSHELF_CONFIG_DIR env > platform default.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDBPath returns the database file location following the
// precedence chain: flag > config value > PARTSHELF_DATA_DIR env >
// platform default data dir. Flag and config values are taken as full
// file paths; the env and default cases append DBFileName.
func ResolveDBPath(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		abs, err := filepath.Abs(env)
		if err != nil {
			return "", err
		}
		return filepath.Join(abs, DBFileName), nil
	}
	dir, err := DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DBFileName), nil
}
