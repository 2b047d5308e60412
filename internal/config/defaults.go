package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Gravity:     30,
			JumpSpeed:   17,
			PlayerSpeed: 7,
			MaxStep:     0.05,
		},
		Level: PlatformerLevel{
			FinishDelay: 1,
		},
		View: PlatformerView{
			ScaleX: 2,
			ScaleY: 1,
		},
		Difficulty: DifficultyConfig{
			TimeScale: 1.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPlatformerYAML
}
