package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlappy loads the Flappy configuration.
// Search order: customPath -> ~/.flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
func LoadFlappy(customPath string) (FlappyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flappy.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/flappy.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
// Keys missing from data keep their default values.
func Parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
// Recorded runs store this snapshot so that replays use the exact tuning.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}
