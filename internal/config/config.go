// Package config loads the optional rebootctl configuration file.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the optional rebootctl configuration file.
type Config struct {
	// ExitOnError makes fatal operation failures terminate the process
	// with the operation's exit code instead of returning an error.
	ExitOnError bool          `yaml:"exitOnError"`
	Logging     LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{Logging: LoggingConfig{Enabled: true, Level: "info"}}
}

// Path returns the resolved path to the config file.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "rebootctl", "config.yaml")
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	if path == "" {
		path = Path()
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}
