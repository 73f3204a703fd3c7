package dodge

import (
	"fmt"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Visual characters for rendering
const (
	BackgroundChar = '·'
	CharacterChar  = '▓'
	ObstacleChar   = '█'
)

// backgroundStep spaces the background dots in cells.
const backgroundStep = 6

// Render draws the current game state to the screen. The canvas is
// stretched over the whole screen; row 0 doubles as the HUD line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cfg := g.world.Config()
	cols, rows := dst.Width(), dst.Height()
	toCells := func(r core.RectF) core.Rect {
		return r.ToCells(cfg.Canvas.Width, cfg.Canvas.Height, cols, rows)
	}

	// Draw background
	for y := 1; y < rows; y += 2 {
		offset := (y / 2 % 2) * backgroundStep / 2
		for x := offset; x < cols; x += backgroundStep {
			dst.SetColor(x, y, BackgroundChar, core.ColorGray)
		}
	}

	// Draw character
	dst.DrawRectColor(toCells(g.world.Character().Rect()), CharacterChar, core.ColorCyan)

	// Draw obstacles
	for _, o := range g.world.Obstacles() {
		dst.DrawRectColor(toCells(o.Rect()), ObstacleChar, core.ColorRed)
	}

	// Draw HUD
	scoreText := fmt.Sprintf(" Score: %d ", g.world.Score())
	dst.DrawTextColor(2, 0, scoreText, core.ColorBrightYellow)
	if ev, ok := g.LastGameOver(); ok {
		dst.DrawTextColor(2+len(scoreText), 0, fmt.Sprintf(" Last: %d ", ev.Score), core.ColorGray)
	}

	levelText := fmt.Sprintf(" Spd: x%.1f  Every: %.1fs ",
		g.world.Multiplier(), g.world.SpawnInterval().Seconds())
	dst.DrawText(cols-len(levelText)-2, 0, levelText)

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}
