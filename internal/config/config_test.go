package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysOntoDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abwconvert.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
output_dir = "/tmp/out"
concurrency = 8
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, 8, cfg.Concurrency)
	// fields not named in the file keep Default()'s values
	assert.Equal(t, Default().CachePath, cfg.CachePath)
	assert.Equal(t, Default().HistoryPath, cfg.HistoryPath)
	assert.Equal(t, Default().LogLevel, cfg.LogLevel)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Error(t, err)
}
