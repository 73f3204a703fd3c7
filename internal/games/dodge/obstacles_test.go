package dodge

import (
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

func TestSpawnWithinCanvas(t *testing.T) {
	cfg := config.DefaultDodgeConfig().Obstacles
	om := NewObstacleManager(7, cfg)

	const canvasW = 400.0
	for i := 0; i < 1000; i++ {
		o := om.Spawn(canvasW, 1.5)

		if o.Size < cfg.MinSize || o.Size >= cfg.MaxSize {
			t.Fatalf("size %v outside [%v, %v)", o.Size, cfg.MinSize, cfg.MaxSize)
		}
		if o.X < 0 || o.X > canvasW-o.Size {
			t.Fatalf("x %v outside [0, %v]", o.X, canvasW-o.Size)
		}
		if o.Y >= 0 {
			t.Fatalf("y %v should be above the canvas", o.Y)
		}
		if o.Speed < cfg.MinSpeed*1.5 || o.Speed >= cfg.MaxSpeed*1.5 {
			t.Fatalf("speed %v outside scaled range", o.Speed)
		}
	}

	if om.Len() != 1000 {
		t.Errorf("Len() = %d, expected 1000", om.Len())
	}
}

func TestSpawnFixedSize(t *testing.T) {
	cfg := config.DefaultDodgeConfig().Obstacles
	cfg.MinSize, cfg.MaxSize = 40, 40
	om := NewObstacleManager(1, cfg)

	for i := 0; i < 200; i++ {
		o := om.Spawn(400, 1)
		if o.Size != 40 {
			t.Fatalf("size = %v, expected 40", o.Size)
		}
		if o.X < 0 || o.X > 360 {
			t.Fatalf("x = %v, expected within [0, 360]", o.X)
		}
	}
}

func TestAdvanceMovesAndPrunes(t *testing.T) {
	om := NewObstacleManager(1, config.DefaultDodgeConfig().Obstacles)
	om.obstacles = append(om.obstacles,
		Obstacle{X: 0, Y: -20, Size: 20, Speed: 3},
		Obstacle{X: 50, Y: 598, Size: 20, Speed: 3}, // falls past the bottom
		Obstacle{X: 100, Y: 600, Size: 20, Speed: 0}, // exactly on the bottom edge stays
	)

	player := core.NewRectF(700, 0, 50, 50)
	if om.Advance(player, 600) {
		t.Fatal("no obstacle should hit the player")
	}

	got := om.Obstacles()
	if len(got) != 2 {
		t.Fatalf("expected 2 obstacles after pruning, got %d: %+v", len(got), got)
	}
	if got[0].Y != -17 {
		t.Errorf("first obstacle y = %v, expected -17", got[0].Y)
	}
	if got[1].X != 100 {
		t.Errorf("wrong obstacle kept: %+v", got[1])
	}
}

func TestAdvanceDetectsHit(t *testing.T) {
	tests := []struct {
		name     string
		obstacle Obstacle
		player   core.RectF
		hit      bool
	}{
		{
			name:     "shared top-left corner",
			obstacle: Obstacle{X: 100, Y: 100, Size: 50},
			player:   core.NewRectF(100, 100, 100, 100),
			hit:      true,
		},
		{
			name:     "falls onto the head",
			obstacle: Obstacle{X: 120, Y: 40, Size: 50, Speed: 10},
			player:   core.NewRectF(100, 100, 100, 100),
			hit:      true,
		},
		{
			name:     "touches diagonal corner",
			obstacle: Obstacle{X: 200, Y: 200, Size: 20},
			player:   core.NewRectF(100, 100, 100, 100),
			hit:      true,
		},
		{
			name:     "just misses",
			obstacle: Obstacle{X: 201, Y: 100, Size: 20},
			player:   core.NewRectF(100, 100, 100, 100),
			hit:      false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			om := NewObstacleManager(1, config.DefaultDodgeConfig().Obstacles)
			om.obstacles = append(om.obstacles, tc.obstacle)
			if got := om.Advance(tc.player, 600); got != tc.hit {
				t.Errorf("Advance() hit = %v, expected %v", got, tc.hit)
			}
		})
	}
}

func TestClearKeepsSequence(t *testing.T) {
	cfg := config.DefaultDodgeConfig().Obstacles
	a := NewObstacleManager(99, cfg)
	b := NewObstacleManager(99, cfg)

	first := a.Spawn(800, 1)
	if b.Spawn(800, 1) != first {
		t.Fatal("same seed should spawn identical obstacles")
	}

	a.Clear()
	if a.Len() != 0 {
		t.Fatal("Clear should empty the field")
	}
	if a.Spawn(800, 1) == first {
		t.Error("RNG should continue after Clear")
	}
}
