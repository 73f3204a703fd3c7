package config

import "time"

// DifficultyRamp tracks the stepped difficulty of a single run.
//
// It remembers how many period boundaries it has already applied, so a
// slow frame that skips past several boundaries applies each missed step
// exactly once and a fast frame never applies the same step twice.
type DifficultyRamp struct {
	cfg   DifficultyConfig
	steps int // Period boundaries applied since the run started
}

// NewDifficultyRamp creates a ramp at its initial level.
func NewDifficultyRamp(cfg DifficultyConfig) *DifficultyRamp {
	return &DifficultyRamp{cfg: cfg}
}

// Reset returns the ramp to its initial level.
func (d *DifficultyRamp) Reset() {
	d.steps = 0
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyRamp) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyRamp) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.StepEveryMs > 0
}

// Advance applies every step whose boundary lies within elapsed run time
// and returns how many new steps were applied.
func (d *DifficultyRamp) Advance(elapsed time.Duration) int {
	if !d.IsEnabled() || elapsed < 0 {
		return 0
	}

	crossed := int(elapsed / d.cfg.StepEvery())
	if crossed <= d.steps {
		return 0
	}

	applied := crossed - d.steps
	d.steps = crossed
	return applied
}

// Steps returns the number of steps applied so far.
func (d *DifficultyRamp) Steps() int {
	return d.steps
}

// Multiplier returns the current obstacle speed multiplier.
// It never decreases while the run lasts.
func (d *DifficultyRamp) Multiplier() float64 {
	return d.cfg.InitialMultiplier + float64(d.steps)*d.cfg.SpeedStep
}

// SpawnInterval returns the current minimum gap between obstacle spawns.
// It never increases while the run lasts and never drops below the floor.
func (d *DifficultyRamp) SpawnInterval() time.Duration {
	interval := d.cfg.InitialInterval() - time.Duration(d.steps)*d.cfg.IntervalStep()
	return max(interval, d.cfg.MinInterval())
}
