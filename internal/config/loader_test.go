package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseDodge(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML failed to load: %v", err)
	}
	if cfg != DefaultDodgeConfig() {
		t.Errorf("embedded YAML = %+v\nhardcoded = %+v", cfg, DefaultDodgeConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := ParseDodge([]byte("canvas:\n  width: 400\n  height: 300\n"))
	if err != nil {
		t.Fatalf("ParseDodge: %v", err)
	}
	if cfg.Canvas.Width != 400 || cfg.Canvas.Height != 300 {
		t.Errorf("canvas = %+v, expected 400x300", cfg.Canvas)
	}
	if cfg.Character != DefaultDodgeConfig().Character {
		t.Errorf("unmentioned keys should keep defaults, got %+v", cfg.Character)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero canvas", "canvas:\n  width: 0\n"},
		{"character too wide", "canvas:\n  width: 50\n  height: 600\n"},
		{"inverted size range", "obstacles:\n  min_size: 80\n  max_size: 20\n"},
		{"floor above start", "difficulty:\n  min_interval_ms: 3000\n"},
		{"zero period", "difficulty:\n  step_every_ms: 0\n"},
		{"negative step", "difficulty:\n  speed_step: -0.1\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDodge([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := ParseDodge([]byte("canvas: [not, a, map"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("syntax errors should not be reported as validation errors")
	}
}

func TestLoadDodgeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dodge.yaml")
	if err := os.WriteFile(path, []byte("character:\n  speed: 8\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDodge(path)
	if err != nil {
		t.Fatalf("LoadDodge: %v", err)
	}
	if cfg.Character.Speed != 8 {
		t.Errorf("speed = %v, expected 8", cfg.Character.Speed)
	}

	if _, err := LoadDodge(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should be an error")
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultDodgeConfig()
	cfg.Canvas.Width = 1024

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	back, err := ParseDodge(data)
	if err != nil {
		t.Fatal(err)
	}
	if back != cfg {
		t.Errorf("got %+v, expected %+v", back, cfg)
	}
}

func TestApplyDodgePreset(t *testing.T) {
	base := DefaultDodgeConfig()

	fixed := base
	ApplyDodgePreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable the ramp")
	}

	easy := base
	ApplyDodgePreset(&easy, DifficultyEasy)
	if easy.Difficulty.SpeedStep != 0.05 || easy.Difficulty.IntervalStepMs != 50 {
		t.Errorf("easy preset steps = %v / %d", easy.Difficulty.SpeedStep, easy.Difficulty.IntervalStepMs)
	}

	hard := base
	ApplyDodgePreset(&hard, DifficultyHard)
	if hard.Difficulty.InitialMultiplier != 1.5 || hard.Difficulty.InitialIntervalMs != 1500 {
		t.Errorf("hard preset start = %v / %d", hard.Difficulty.InitialMultiplier, hard.Difficulty.InitialIntervalMs)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	normal := base
	ApplyDodgePreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change the config")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown presets should parse to empty")
	}
}
