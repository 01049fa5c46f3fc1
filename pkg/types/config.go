package types

import (
	"errors"
	"time"
)

// Default settings applied by Config.ApplyDefaults.
const (
	// DefaultWidthSaveQuiet is the quiet window for debounced column
	// width saves: a width change is persisted only when no further
	// change to the same column arrives within this window.
	DefaultWidthSaveQuiet = 1500 * time.Millisecond

	DefaultLogLevel = "info"
)

// Config validation errors.
var (
	ErrDBPathEmpty = errors.New("db_path must not be empty")
)

// Config holds the resolved settings for opening a catalog.
type Config struct {
	// DBPath is the SQLite database file location.
	DBPath string `yaml:"db_path"`

	// WidthSaveQuiet is the debounce window for column width saves.
	WidthSaveQuiet time.Duration `yaml:"width_save_quiet"`

	// LogLevel is the zerolog level name (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// ApplyDefaults fills unset optional settings with their defaults.
func (c *Config) ApplyDefaults() {
	if c.WidthSaveQuiet <= 0 {
		c.WidthSaveQuiet = DefaultWidthSaveQuiet
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return ErrDBPathEmpty
	}
	return nil
}
