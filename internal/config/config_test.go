package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, DefaultBaseURL, cfg.App.BaseURL)
	assert.Equal(t, "uploads", cfg.App.UploadsDir)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_BaseURLFromEnv(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("BASE_URL", "https://api.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.App.BaseURL)
}

func TestLoadFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9100
log:
  level: debug
app:
  baseUrl: https://shop.example.com
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "https://shop.example.com", cfg.App.BaseURL)
	// Unset values fall back to defaults.
	assert.Equal(t, "uploads", cfg.App.UploadsDir)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
