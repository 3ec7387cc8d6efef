package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBalance loads the game balance.
// Search order: customPath -> ~/.goldmine/balance.yaml -> ./configs/balance.yaml -> embedded default
func LoadBalance(customPath string) (Balance, error) {
	var b Balance

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return b, fmt.Errorf("failed to read balance %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &b); err != nil {
			return b, fmt.Errorf("failed to parse balance %s: %w", customPath, err)
		}
		if err := b.Validate(); err != nil {
			return b, fmt.Errorf("invalid balance %s: %w", customPath, err)
		}
		return b, nil
	}

	// Try user config directory
	if userPath := userConfigPath("balance.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &b); err == nil && b.Validate() == nil {
				return b, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/balance.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &b); err == nil && b.Validate() == nil {
			return b, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBalanceYAML, &b); err != nil {
		return DefaultBalance(), nil // Fallback to hardcoded if embed fails
	}
	return b, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".goldmine", filename)
}
