package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the default Dodge configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Character: CharacterConfig{
			Width:  100,
			Height: 100,
			Speed:  5,
		},
		Obstacles: ObstacleConfig{
			MinSize:  20,
			MaxSize:  70,
			MinSpeed: 2,
			MaxSpeed: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:           true,
			StepEveryMs:       5000,
			InitialMultiplier: 1.0,
			SpeedStep:         0.1,
			InitialIntervalMs: 2000,
			IntervalStepMs:    100,
			MinIntervalMs:     500,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
