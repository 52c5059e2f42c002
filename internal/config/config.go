// Package config loads the application configuration from a TOML file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Storage contains configuration for client-side persistence.
type Storage struct {
	// Path is the sqlite database file. Empty selects the in-memory store.
	Path string `toml:"path"`
}

// Library contains configuration for the local track catalog.
type Library struct {
	// ImportDir is scanned for audio files at startup when set. Imported
	// tracks are added alongside the built-in catalog.
	ImportDir string `toml:"import_dir"`
}

// Playback contains configuration for the player engine.
type Playback struct {
	// DefaultVolume applies when no persisted volume exists (0.0 to 1.0).
	DefaultVolume float64 `toml:"default_volume"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"` // "text" or "json"
	Level  string `toml:"level"`  // DEBUG, INFO, WARN, ERROR
}

// Config encapsulates all configuration values for the application.
type Config struct {
	Storage  Storage  `toml:"storage"`
	Library  Library  `toml:"library"`
	Playback Playback `toml:"playback"`
	Logging  Logging  `toml:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Storage:  Storage{Path: ""},
		Playback: Playback{DefaultVolume: 0.5},
		Logging:  Logging{Format: "text", Level: "INFO"},
	}
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/musicstream/config.toml")
}

// Load locates and parses a configuration file. A missing file is not an
// error: defaults apply. The returned path is where the config was read
// from (or would be written to), and the boolean reports whether it existed.
func Load(path string) (Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return Config{}, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return Config{}, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return Config{}, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, "", false, err
	}

	return cfg, resolvedPath, exists, nil
}

// Validate checks value ranges that decoding cannot enforce.
func (c *Config) Validate() error {
	if c.Playback.DefaultVolume < 0 || c.Playback.DefaultVolume > 1 {
		return fmt.Errorf("playback.default_volume must be between 0.0 and 1.0, got %v", c.Playback.DefaultVolume)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format must be \"text\" or \"json\", got %q", c.Logging.Format)
	}
	switch strings.ToUpper(c.Logging.Level) {
	case "", "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return fmt.Errorf("logging.level must be one of DEBUG, INFO, WARN, ERROR, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) normalize() error {
	var err error
	if c.Storage.Path != "" {
		if c.Storage.Path, err = expandPath(c.Storage.Path); err != nil {
			return err
		}
	}
	if c.Library.ImportDir != "" {
		if c.Library.ImportDir, err = expandPath(c.Library.ImportDir); err != nil {
			return err
		}
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("musicstream.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
