package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "gravity.yaml"

// Load loads the simulation configuration.
// Search order: customPath -> ~/.gravity/configs/gravity.yaml -> ./configs/gravity.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
// The result is validated; an invalid custom file is an error, an invalid
// implicit file is skipped.
func Load(customPath string) (GravityConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GravityConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GravityConfig{}, fmt.Errorf("config: failed to load %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultGravityYAML)
	if err != nil {
		return DefaultGravityConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (GravityConfig, error) {
	cfg := DefaultGravityConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GravityConfig{}, fmt.Errorf("config: failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GravityConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gravity", "configs", filename)
}
