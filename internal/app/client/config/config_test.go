package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("DATA_PATH", "")
	t.Setenv("STORAGE_DRIVER", StorageSQLite)
	t.Setenv("HTTP_ADDRESS", "127.0.0.1:9999")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDev, cfg.Env)
	assert.Equal(t, dir, cfg.ConfigDir)
	assert.Equal(t, filepath.Join(dir, "data.db"), cfg.DataPath)
	assert.Equal(t, "127.0.0.1:9999", cfg.HTTPAddress)
	assert.Equal(t, filepath.Join(dir, "markskeeper.log"), cfg.LogPath())
	assert.False(t, cfg.IsProd())
	assert.False(t, cfg.IsLocal())
}

func TestLoad_ExplicitDataPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("DATA_PATH", filepath.Join(dir, "other.db"))
	t.Setenv("STORAGE_DRIVER", StorageMemory)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "other.db"), cfg.DataPath)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("STORAGE_DRIVER", "postgres")

	_, err := Load()
	assert.Error(t, err)
	assert.Panics(t, func() { MustLoad() })
}
