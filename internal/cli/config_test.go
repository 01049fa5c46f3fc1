package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partshelf/partshelf/pkg/types"
)

func TestLoadConfigWritesDefaultFileOnFirstRun(t *testing.T) {
	dir := t.TempDir()

	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultWidthSaveQuiet, cfg.WidthSaveQuiet)
	assert.Equal(t, types.DefaultLogLevel, cfg.LogLevel)
	assert.Empty(t, cfg.DBPath)

	_, err = os.Stat(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, err)
}

func TestLoadConfigReadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	content := "db_path: /somewhere/catalog.db\nwidth_save_quiet_ms: 250\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "/somewhere/catalog.db", cfg.DBPath)
	assert.Equal(t, 250*time.Millisecond, cfg.WidthSaveQuiet)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigKeepsExistingFileUntouched(t *testing.T) {
	dir := t.TempDir()
	content := "log_level: warn\n"
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := loadConfig(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}
