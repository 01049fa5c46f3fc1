// Config loading for the partshelf CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/partshelf/partshelf/pkg/types"
)

const (
	configFileName     = "config"
	configFileType     = "yaml"
	configFileFullName = "config.yaml"

	cfgKeyDBPath     = "db_path"
	cfgKeyWidthQuiet = "width_save_quiet_ms"
	cfgKeyLogLevel   = "log_level"
)

// configFile is the structure written to config.yaml on first run.
type configFile struct {
	DBPath          string `yaml:"db_path,omitempty"`
	WidthSaveQuiet  int    `yaml:"width_save_quiet_ms"`
	LogLevel        string `yaml:"log_level"`
}

// loadConfig reads config.yaml from the config directory using Viper,
// creating the directory and a default file on first run. A missing
// config.yaml is not an error.
func loadConfig(configDir string) (types.Config, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return types.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return types.Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyWidthQuiet, int(types.DefaultWidthSaveQuiet/time.Millisecond))
	v.SetDefault(cfgKeyLogLevel, types.DefaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		DBPath:         v.GetString(cfgKeyDBPath),
		WidthSaveQuiet: time.Duration(v.GetInt(cfgKeyWidthQuiet)) * time.Millisecond,
		LogLevel:       v.GetString(cfgKeyLogLevel),
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ensureDefaultConfigFile creates config.yaml with default values if the
// file does not exist. Idempotent.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileFullName)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	cfg := configFile{
		WidthSaveQuiet: int(types.DefaultWidthSaveQuiet / time.Millisecond),
		LogLevel:       types.DefaultLogLevel,
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
