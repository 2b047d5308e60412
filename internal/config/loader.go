package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	var cfg PlatformerConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Validate()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("platformer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.Validate()
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/platformer.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.Validate()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Validate()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if scale, ok := TimeScaleForPreset(preset); ok {
		cfg.Difficulty.TimeScale = scale
	}
}
