// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import "time"

// DodgeConfig contains all configuration for the Dodge game.
type DodgeConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Character  CharacterConfig  `yaml:"character"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CanvasConfig defines the playfield size in world units (pixels).
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CharacterConfig defines the player sprite.
type CharacterConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Units moved per tick per held direction
}

// ObstacleConfig defines the random ranges used when spawning obstacles.
// Ranges are half-open: [min, max).
type ObstacleConfig struct {
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// DifficultyConfig defines the stepped difficulty ramp.
// Every StepEveryMs of run time the speed multiplier grows by SpeedStep and
// the spawn interval shrinks by IntervalStepMs, never below MinIntervalMs.
type DifficultyConfig struct {
	Enabled           bool    `yaml:"enabled"`
	StepEveryMs       int     `yaml:"step_every_ms"`
	InitialMultiplier float64 `yaml:"initial_multiplier"`
	SpeedStep         float64 `yaml:"speed_step"`
	InitialIntervalMs int     `yaml:"initial_interval_ms"`
	IntervalStepMs    int     `yaml:"interval_step_ms"`
	MinIntervalMs     int     `yaml:"min_interval_ms"`
}

// StepEvery returns the ramp period as a duration.
func (d DifficultyConfig) StepEvery() time.Duration {
	return time.Duration(d.StepEveryMs) * time.Millisecond
}

// InitialInterval returns the starting spawn interval.
func (d DifficultyConfig) InitialInterval() time.Duration {
	return time.Duration(d.InitialIntervalMs) * time.Millisecond
}

// IntervalStep returns the spawn interval decrease per step.
func (d DifficultyConfig) IntervalStep() time.Duration {
	return time.Duration(d.IntervalStepMs) * time.Millisecond
}

// MinInterval returns the spawn interval floor.
func (d DifficultyConfig) MinInterval() time.Duration {
	return time.Duration(d.MinIntervalMs) * time.Millisecond
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{
	DifficultyEasy,
	DifficultyNormal,
	DifficultyHard,
	DifficultyFixed,
}

// ParsePreset converts a CLI string to a preset.
// Unknown or empty strings yield "" which keeps the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// Description returns a one-line summary for menus and help text.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "Gentle ramp, half-size steps"
	case DifficultyNormal:
		return "Ramp as configured"
	case DifficultyHard:
		return "Starts faster with denser spawns"
	case DifficultyFixed:
		return "No ramp, starting values forever"
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
