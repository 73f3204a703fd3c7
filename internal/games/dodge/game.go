// Package dodge implements a falling-obstacle dodge game.
// The player steers a sprite around a fixed canvas while obstacles rain down
// faster and more often the longer the run lasts. The score is the number of
// whole seconds survived.
package dodge

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "dodge"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// defaultLogger is handed to games created after SetLogger.
var defaultLogger = log.Default()

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger for games created from now on.
func SetLogger(logger *log.Logger) {
	defaultLogger = logger
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts the World simulation to the arcade platform: it owns the
// clock, pause handling and config loading.
type Game struct {
	world   *World
	clock   core.Clock
	runtime core.RuntimeConfig
	cfg     config.DodgeConfig
	pending *config.DodgeConfig // Hot-reloaded config waiting for the next run
	preset  config.DifficultyPreset
	logger  *log.Logger

	paused      bool
	pausedAt    time.Time     // Wall-clock time the current pause began
	pausedTotal time.Duration // Wall-clock time spent paused, excluded from game time
	lastOver    *core.Event   // Most recent game-over, for the HUD
}

// New creates a new Dodge game instance driven by the system clock.
func New() *Game {
	return NewWithClock(core.SystemClock{})
}

// NewWithClock creates a game that reads time from clock.
func NewWithClock(clock core.Clock) *Game {
	return &Game{
		clock:  clock,
		logger: defaultLogger,
	}
}

// SetLogger replaces the logger used for config fallbacks.
func (g *Game) SetLogger(logger *log.Logger) {
	g.logger = logger
}

// SetPreset overrides the package-level difficulty preset for this
// instance. Concurrent SSH sessions each pick their own.
func (g *Game) SetPreset(preset config.DifficultyPreset) {
	g.preset = preset
}

func (g *Game) activePreset() config.DifficultyPreset {
	if g.preset != "" {
		return g.preset
	}
	return difficultyPreset
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodge"
}

// Description returns a one-line summary for game listings.
func (g *Game) Description() string {
	return "Steer clear of falling blocks; score is seconds survived"
}

// Reset loads the config and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDodge(configPath)
	if err != nil {
		g.logger.Warn("using default dodge config", "path", configPath, "error", err)
		cfg = config.DefaultDodgeConfig()
	}

	// Apply difficulty preset if set
	if preset := g.activePreset(); preset != "" {
		config.ApplyDodgePreset(&cfg, preset)
	}

	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig starts a fresh session with an explicit config.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.DodgeConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.pending = nil
	g.paused = false
	g.pausedTotal = 0
	g.lastOver = nil
	g.world = NewWorld(cfg, runtime.Seed, g.now())
}

// QueueConfig stores a config to use from the next run on. The running
// run is never changed mid-flight.
func (g *Game) QueueConfig(cfg config.DodgeConfig) {
	if preset := g.activePreset(); preset != "" {
		config.ApplyDodgePreset(&cfg, preset)
	}
	g.pending = &cfg
}

// now returns game time: wall-clock time minus time spent paused.
func (g *Game) now() time.Time {
	return g.clock.Now().Add(-g.pausedTotal)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.togglePause()
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.restart()
	}

	now := g.now()
	ev, over := g.world.Tick(now, in)
	if !over {
		return core.StepResult{State: g.State()}
	}

	g.lastOver = &ev
	if g.pending != nil {
		g.restart()
	}
	return core.StepResult{State: g.State(), Events: []core.Event{ev}}
}

// restart begins a new run at the current game time, switching to a queued
// config if there is one.
func (g *Game) restart() {
	now := g.now()
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
		g.world.Reconfigure(g.cfg, now)
		return
	}
	g.world.Reset(now)
}

func (g *Game) togglePause() {
	if g.paused {
		g.pausedTotal += g.clock.Now().Sub(g.pausedAt)
		g.paused = false
		return
	}
	g.paused = true
	g.pausedAt = g.clock.Now()
}

// State returns the current game state. A dodge session never ends on its
// own, so GameOver is always false; runs end through game-over events.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.world.Score(),
		Paused: g.paused,
	}
}

// World exposes the simulation for frontends that draw it themselves.
func (g *Game) World() *World {
	return g.world
}

// LastGameOver returns the most recent game-over event of this session.
func (g *Game) LastGameOver() (core.Event, bool) {
	if g.lastOver == nil {
		return core.Event{}, false
	}
	return *g.lastOver, true
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
