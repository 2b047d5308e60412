// Package config provides YAML-based game configuration loading and
// difficulty presets for the platformer.
package config

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics    PlatformerPhysics `yaml:"physics"`
	Level      PlatformerLevel   `yaml:"level"`
	View       PlatformerView    `yaml:"view"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// PlatformerPhysics defines player control parameters.
type PlatformerPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpSpeed   float64 `yaml:"jump_speed"`
	PlayerSpeed float64 `yaml:"player_speed"`
	MaxStep     float64 `yaml:"max_step"`
}

// PlatformerLevel defines level outcome parameters.
type PlatformerLevel struct {
	FinishDelay float64 `yaml:"finish_delay"`
}

// PlatformerView defines how level units map to terminal cells.
type PlatformerView struct {
	ScaleX int `yaml:"scale_x"`
	ScaleY int `yaml:"scale_y"`
}

// DifficultyConfig controls game speed.
type DifficultyConfig struct {
	TimeScale float64 `yaml:"time_scale"` // Simulated seconds per real second
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// TimeScaleForPreset returns the time scale for a difficulty preset.
// ok is false for fixed and unknown presets, which keep the config value.
func TimeScaleForPreset(preset DifficultyPreset) (scale float64, ok bool) {
	switch preset {
	case DifficultyEasy:
		return 0.75, true
	case DifficultyNormal:
		return 1.0, true
	case DifficultyHard:
		return 1.25, true
	default:
		return 0, false
	}
}

// Validate fills zero or invalid fields with defaults so a partial YAML file
// still produces a playable configuration.
func (c *PlatformerConfig) Validate() {
	def := DefaultPlatformerConfig()

	if c.Physics.Gravity <= 0 {
		c.Physics.Gravity = def.Physics.Gravity
	}
	if c.Physics.JumpSpeed <= 0 {
		c.Physics.JumpSpeed = def.Physics.JumpSpeed
	}
	if c.Physics.PlayerSpeed <= 0 {
		c.Physics.PlayerSpeed = def.Physics.PlayerSpeed
	}
	if c.Physics.MaxStep <= 0 {
		c.Physics.MaxStep = def.Physics.MaxStep
	}
	if c.Level.FinishDelay <= 0 {
		c.Level.FinishDelay = def.Level.FinishDelay
	}
	if c.View.ScaleX <= 0 {
		c.View.ScaleX = def.View.ScaleX
	}
	if c.View.ScaleY <= 0 {
		c.View.ScaleY = def.View.ScaleY
	}
	if c.Difficulty.TimeScale <= 0 {
		c.Difficulty.TimeScale = def.Difficulty.TimeScale
	}
}
