package dodge

import (
	"math/rand"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Obstacle is a falling square the player must avoid.
type Obstacle struct {
	X, Y  float64 // Top-left corner; Y < 0 while still above the canvas
	Size  float64 // Width and height, fixed at spawn
	Speed float64 // Units fallen per tick, already scaled by difficulty
}

// Rect returns the collision box for this obstacle.
func (o Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.Size, o.Size)
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.ObstacleConfig
}

// NewObstacleManager creates a new obstacle manager with the given RNG seed.
func NewObstacleManager(seed int64, cfg config.ObstacleConfig) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 16),
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg,
	}
}

// UpdateConfig swaps the spawn ranges used for future obstacles.
func (om *ObstacleManager) UpdateConfig(cfg config.ObstacleConfig) {
	om.cfg = cfg
}

// Clear removes every obstacle. The RNG keeps its sequence so consecutive
// runs in one session see different obstacles.
func (om *ObstacleManager) Clear() {
	om.obstacles = om.obstacles[:0]
}

// Spawn appends one obstacle above a canvasW-wide canvas. Its size and base
// speed are drawn from the configured ranges; the speed is then scaled by
// multiplier.
func (om *ObstacleManager) Spawn(canvasW, multiplier float64) Obstacle {
	size := om.between(om.cfg.MinSize, om.cfg.MaxSize)
	o := Obstacle{
		X:     om.rng.Float64() * max(0, canvasW-size),
		Y:     -size,
		Size:  size,
		Speed: om.between(om.cfg.MinSpeed, om.cfg.MaxSpeed) * multiplier,
	}
	om.obstacles = append(om.obstacles, o)
	return o
}

// between draws uniformly from [lo, hi).
func (om *ObstacleManager) between(lo, hi float64) float64 {
	return lo + om.rng.Float64()*(hi-lo)
}

// Advance moves every obstacle down by its speed. It stops and reports a hit
// as soon as a moved obstacle overlaps player. Obstacles whose top edge has
// passed canvasH are dropped.
func (om *ObstacleManager) Advance(player core.RectF, canvasH float64) (hit bool) {
	kept := om.obstacles[:0]
	for i := range om.obstacles {
		o := om.obstacles[i]
		o.Y += o.Speed

		if o.Rect().Overlaps(player) {
			// Keep the remainder untouched; the caller resets the field.
			kept = append(kept, o)
			kept = append(kept, om.obstacles[i+1:]...)
			om.obstacles = kept
			return true
		}

		if o.Y > canvasH {
			continue
		}
		kept = append(kept, o)
	}
	om.obstacles = kept
	return false
}

// Obstacles returns the current list of obstacles.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// Len returns the number of live obstacles.
func (om *ObstacleManager) Len() int {
	return len(om.obstacles)
}
