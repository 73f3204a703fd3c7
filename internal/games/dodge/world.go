package dodge

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Character is the player-controlled sprite.
type Character struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
}

// Rect returns the collision box for the character.
func (c Character) Rect() core.RectF {
	return core.NewRectF(c.X, c.Y, c.Width, c.Height)
}

// World is the complete simulation state of one dodge session.
// It is owned by a single goroutine; every method takes the current time
// explicitly so tests can drive it without a real clock.
type World struct {
	cfg       config.DodgeConfig
	character Character
	obstacles *ObstacleManager
	ramp      *config.DifficultyRamp
	startTime time.Time // Start of the current run
	lastSpawn time.Time // Time of the last obstacle spawn
	score     int       // Whole seconds survived in the current run
}

// NewWorld creates a world and starts its first run at now.
func NewWorld(cfg config.DodgeConfig, seed int64, now time.Time) *World {
	w := &World{
		cfg:       cfg,
		obstacles: NewObstacleManager(seed, cfg.Obstacles),
		ramp:      config.NewDifficultyRamp(cfg.Difficulty),
	}
	w.Reset(now)
	return w
}

// Reset starts a new run at now: the character is re-centred at the bottom,
// obstacles are cleared and every timer and multiplier returns to its
// initial value.
func (w *World) Reset(now time.Time) {
	w.character = Character{
		X:      w.cfg.Canvas.Width/2 - w.cfg.Character.Width/2,
		Y:      w.cfg.Canvas.Height - w.cfg.Character.Height,
		Width:  w.cfg.Character.Width,
		Height: w.cfg.Character.Height,
		Speed:  w.cfg.Character.Speed,
	}
	w.obstacles.Clear()
	w.ramp.Reset()
	w.startTime = now
	w.lastSpawn = now
	w.score = 0
}

// Reconfigure swaps the config and starts a new run at now.
func (w *World) Reconfigure(cfg config.DodgeConfig, now time.Time) {
	w.cfg = cfg
	w.obstacles.UpdateConfig(cfg.Obstacles)
	w.ramp = config.NewDifficultyRamp(cfg.Difficulty)
	w.Reset(now)
}

// Tick advances the simulation by one frame. When an obstacle hits the
// character it returns a game-over event carrying the final score; the world
// has already been reset by then and the next Tick continues with a new run.
func (w *World) Tick(now time.Time, in core.InputFrame) (core.Event, bool) {
	w.advanceDifficulty(now)
	w.moveCharacter(in)
	w.spawnObstacle(now)

	if w.advanceObstacles() {
		final := w.scoreAt(now)
		w.Reset(now)
		return core.Event{Kind: core.EventGameOver, Score: final}, true
	}

	w.updateScore(now)
	return core.Event{}, false
}

// advanceDifficulty applies every difficulty step whose period boundary
// has been crossed since the run started.
func (w *World) advanceDifficulty(now time.Time) {
	w.ramp.Advance(now.Sub(w.startTime))
}

// moveCharacter shifts the character by its speed for each held direction.
// Diagonals are not normalised, so diagonal movement is faster than axial.
func (w *World) moveCharacter(in core.InputFrame) {
	c := &w.character
	maxX := w.cfg.Canvas.Width - c.Width
	maxY := w.cfg.Canvas.Height - c.Height

	if in.Has(core.ActionLeft) && c.X > 0 {
		c.X -= c.Speed
	}
	if in.Has(core.ActionRight) && c.X < maxX {
		c.X += c.Speed
	}
	if in.Has(core.ActionUp) && c.Y > 0 {
		c.Y -= c.Speed
	}
	if in.Has(core.ActionDown) && c.Y < maxY {
		c.Y += c.Speed
	}

	c.X = core.ClampF(c.X, 0, maxX)
	c.Y = core.ClampF(c.Y, 0, maxY)
}

// spawnObstacle adds one obstacle once more than the current spawn interval
// has passed since the previous spawn.
func (w *World) spawnObstacle(now time.Time) {
	if now.Sub(w.lastSpawn) <= w.ramp.SpawnInterval() {
		return
	}
	w.obstacles.Spawn(w.cfg.Canvas.Width, w.ramp.Multiplier())
	w.lastSpawn = now
}

// advanceObstacles moves obstacles and reports whether one hit the character.
func (w *World) advanceObstacles() bool {
	return w.obstacles.Advance(w.character.Rect(), w.cfg.Canvas.Height)
}

// updateScore recomputes the score from the run's elapsed time.
func (w *World) updateScore(now time.Time) {
	w.score = w.scoreAt(now)
}

func (w *World) scoreAt(now time.Time) int {
	elapsed := now.Sub(w.startTime)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / time.Second)
}

// Character returns the player sprite.
func (w *World) Character() Character {
	return w.character
}

// Obstacles returns the live obstacles. The slice is owned by the world and
// is only valid until the next Tick.
func (w *World) Obstacles() []Obstacle {
	return w.obstacles.Obstacles()
}

// Score returns whole seconds survived in the current run.
func (w *World) Score() int {
	return w.score
}

// Multiplier returns the current obstacle speed multiplier.
func (w *World) Multiplier() float64 {
	return w.ramp.Multiplier()
}

// SpawnInterval returns the current spawn interval.
func (w *World) SpawnInterval() time.Duration {
	return w.ramp.SpawnInterval()
}

// Config returns the config the world runs with.
func (w *World) Config() config.DodgeConfig {
	return w.cfg
}
