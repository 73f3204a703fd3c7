package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a config parses but describes an
// unplayable game.
var ErrInvalidConfig = errors.New("invalid config")

// LoadDodge loads Dodge configuration.
// Search order: customPath -> ~/.arcade/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default
func LoadDodge(customPath string) (DodgeConfig, error) {
	// Try custom path first
	if customPath != "" {
		return LoadDodgeFile(customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dodge.yaml"); userCfgPath != "" {
		if cfg, err := LoadDodgeFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadDodgeFile(filepath.Join("configs", "dodge.yaml")); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := ParseDodge(defaultDodgeYAML)
	if err != nil {
		return DefaultDodgeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadDodgeFile reads, parses and validates a single config file.
func LoadDodgeFile(path string) (DodgeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DodgeConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := ParseDodge(data)
	if err != nil {
		return DodgeConfig{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseDodge decodes YAML on top of the defaults, so partial files only
// override the keys they mention, then validates the result.
func ParseDodge(data []byte) (DodgeConfig, error) {
	cfg := DefaultDodgeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DodgeConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DodgeConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func (c DodgeConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Validate checks that the config describes a playable game.
func (c DodgeConfig) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas must have a positive size", ErrInvalidConfig)
	case c.Character.Width <= 0 || c.Character.Height <= 0:
		return fmt.Errorf("%w: character must have a positive size", ErrInvalidConfig)
	case c.Character.Width > c.Canvas.Width || c.Character.Height > c.Canvas.Height:
		return fmt.Errorf("%w: character does not fit on the canvas", ErrInvalidConfig)
	case c.Character.Speed < 0:
		return fmt.Errorf("%w: character speed must not be negative", ErrInvalidConfig)
	case c.Obstacles.MinSize <= 0 || c.Obstacles.MaxSize < c.Obstacles.MinSize:
		return fmt.Errorf("%w: obstacle size range [%g, %g) is empty",
			ErrInvalidConfig, c.Obstacles.MinSize, c.Obstacles.MaxSize)
	case c.Obstacles.MaxSize > c.Canvas.Width:
		return fmt.Errorf("%w: obstacles wider than the canvas", ErrInvalidConfig)
	case c.Obstacles.MinSpeed <= 0 || c.Obstacles.MaxSpeed < c.Obstacles.MinSpeed:
		return fmt.Errorf("%w: obstacle speed range [%g, %g) is empty",
			ErrInvalidConfig, c.Obstacles.MinSpeed, c.Obstacles.MaxSpeed)
	}

	d := c.Difficulty
	switch {
	case d.InitialIntervalMs <= 0:
		return fmt.Errorf("%w: initial spawn interval must be positive", ErrInvalidConfig)
	case d.MinIntervalMs < 0 || d.MinIntervalMs > d.InitialIntervalMs:
		return fmt.Errorf("%w: spawn interval floor %dms outside [0, %dms]",
			ErrInvalidConfig, d.MinIntervalMs, d.InitialIntervalMs)
	case d.InitialMultiplier <= 0:
		return fmt.Errorf("%w: initial multiplier must be positive", ErrInvalidConfig)
	case d.SpeedStep < 0 || d.IntervalStepMs < 0:
		return fmt.Errorf("%w: difficulty steps must not be negative", ErrInvalidConfig)
	case d.Enabled && d.StepEveryMs <= 0:
		return fmt.Errorf("%w: step_every_ms must be positive when the ramp is enabled", ErrInvalidConfig)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyDodgePreset modifies the config based on a difficulty preset.
func ApplyDodgePreset(cfg *DodgeConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	if preset != "" {
		cfg.Difficulty.Enabled = true
	}

	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.SpeedStep /= 2
		cfg.Difficulty.IntervalStepMs /= 2
	case DifficultyHard:
		cfg.Difficulty.InitialMultiplier *= 1.5
		cfg.Difficulty.InitialIntervalMs = max(
			cfg.Difficulty.MinIntervalMs,
			cfg.Difficulty.InitialIntervalMs*3/4,
		)
	}
}
