package paths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigDirPrecedence(t *testing.T) {
	flagDir := t.TempDir()
	envDir := t.TempDir()

	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvConfigDir, envDir)
		got, err := ResolveConfigDir(flagDir)
		require.NoError(t, err)
		assert.Equal(t, flagDir, got)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvConfigDir, envDir)
		got, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, envDir, got)
	})
}

func TestResolveDBPathPrecedence(t *testing.T) {
	flagPath := filepath.Join(t.TempDir(), "flag.db")
	cfgPath := filepath.Join(t.TempDir(), "cfg.db")
	dataDir := t.TempDir()

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvDataDir, dataDir)
		got, err := ResolveDBPath(flagPath, cfgPath)
		require.NoError(t, err)
		assert.Equal(t, flagPath, got)
	})

	t.Run("config value wins over env", func(t *testing.T) {
		t.Setenv(EnvDataDir, dataDir)
		got, err := ResolveDBPath("", cfgPath)
		require.NoError(t, err)
		assert.Equal(t, cfgPath, got)
	})

	t.Run("env dir gets the db file name appended", func(t *testing.T) {
		t.Setenv(EnvDataDir, dataDir)
		got, err := ResolveDBPath("", "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dataDir, DBFileName), got)
	})
}

func TestLinuxXDGDefaults(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout applies to linux only")
	}

	cfgRoot := t.TempDir()
	dataRoot := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfgRoot)
	t.Setenv("XDG_DATA_HOME", dataRoot)
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvDataDir, "")

	cfg, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfgRoot, "partshelf"), cfg)

	data, err := DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataRoot, "partshelf"), data)
}

func TestLinuxHomeFallback(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout applies to linux only")
	}

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")

	orig := platformDir.homeDir
	platformDir.homeDir = func() (string, error) { return home, nil }
	t.Cleanup(func() { platformDir.homeDir = orig })

	cfg, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "partshelf"), cfg)

	data, err := DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", "partshelf"), data)
}
