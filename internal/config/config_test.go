package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, path, exists, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.False(t, exists)
	assert.NotEmpty(t, path)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[storage]
path = "` + filepath.Join(dir, "state.db") + `"

[playback]
default_volume = 0.8

[logging]
format = "json"
level = "DEBUG"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, resolved, exists, err := Load(path)
	require.NoError(t, err)

	assert.True(t, exists)
	assert.Equal(t, path, resolved)
	assert.Equal(t, filepath.Join(dir, "state.db"), cfg.Storage.Path)
	assert.InDelta(t, 0.8, cfg.Playback.DefaultVolume, 0.001)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	// Unset sections keep defaults.
	assert.Empty(t, cfg.Library.ImportDir)
}

func TestLoad_InvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[storage\npath="), 0o644))

	_, _, _, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"volume too high", func(c *Config) { c.Playback.DefaultVolume = 1.5 }, true},
		{"volume negative", func(c *Config) { c.Playback.DefaultVolume = -0.1 }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "LOUD" }, true},
		{"warning level accepted", func(c *Config) { c.Logging.Level = "warning" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, CreateSample(path))

	// The sample parses and validates.
	cfg, _, exists, err := Load(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "text", cfg.Logging.Format)
}
