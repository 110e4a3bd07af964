package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlood loads the Word Flood configuration.
// Search order: customPath -> ~/.wordflood/configs/flood.yaml -> ./configs/flood.yaml -> embedded default
func LoadFlood(customPath string) (FloodConfig, error) {
	var cfg FloodConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		applyDefaults(&cfg)
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flood.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				applyDefaults(&cfg)
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/flood.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			applyDefaults(&cfg)
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultFloodYAML, &cfg); err != nil {
		return DefaultFloodConfig(), nil // Fallback to hardcoded if embed fails
	}
	applyDefaults(&cfg)
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordflood", "configs", filename)
}
