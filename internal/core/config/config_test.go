package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_missing_file_returns_defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"), "/tmp/data")

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.Server.URL)
	assert.Equal(t, 10*time.Second, cfg.Server.Timeout)
	assert.Equal(t, float64(100), cfg.Swipe.Sensitivity)
	assert.Equal(t, "/tmp/data", cfg.DataDir)
}

func TestLoad_parses_yaml_and_fills_defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  url: https://jobs.example.com\nswipe:\n  sensitivity: 60\n"), 0o644))

	cfg, err := Load(path, "/tmp/data")

	require.NoError(t, err)
	assert.Equal(t, "https://jobs.example.com", cfg.Server.URL)
	assert.Equal(t, float64(60), cfg.Swipe.Sensitivity)
	// Unset values keep defaults.
	assert.Equal(t, 10*time.Second, cfg.Server.Timeout)
}

func TestLoad_rejects_bad_url(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  url: \"not a url\"\n"), 0o644))

	_, err := Load(path, "/tmp/data")

	assert.ErrorContains(t, err, "server.url")
}

func TestValidate_requires_data_dir(t *testing.T) {
	cfg := DefaultConfig()

	assert.ErrorContains(t, cfg.Validate(), "data directory")
}
