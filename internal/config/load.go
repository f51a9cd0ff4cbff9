package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < env < flags.
// A .env file in the working directory is read first so DREAMSCAPE_*
// variables can live next to the binary during development.
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyEnv(cfg)
	applyFlags(cfg)
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Dreamscape")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Dreamscape")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "dreamscape")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "dreamscape")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnv applies DREAMSCAPE_* environment overrides.
func applyEnv(cfg *Config) {
	if v := os.Getenv("DREAMSCAPE_SERVER"); v != "" {
		cfg.Server.URL = v
	}
	if v := os.Getenv("DREAMSCAPE_SESSION"); v != "" {
		cfg.Server.SessionID = v
	}
	if v := os.Getenv("DREAMSCAPE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
