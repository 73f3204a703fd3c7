// Package gfx runs the dodge game in a window (or a browser canvas when
// built for WebAssembly) using Ebitengine.
package gfx

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-dodge/internal/assets"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

var (
	obstacleColor = color.RGBA{R: 0xe0, G: 0x40, B: 0x40, A: 0xff}
	overlayColor  = color.RGBA{A: 0xb0}
	panelColor    = color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xf0}
	textColor     = color.White
)

// directions maps keys to the actions they hold while pressed.
var directions = map[ebiten.Key]core.Action{
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyS:          core.ActionDown,
}

// Game implements ebiten.Game on top of a dodge session.
type Game struct {
	game       *dodge.Game
	clock      core.Clock
	keys       *core.KeyState
	oneShot    core.InputFrame
	background *ebiten.Image
	character  *ebiten.Image
	face       text.Face
	logger     *log.Logger
	notice     *core.Event
	debug      bool
}

// New wraps game, which must already be Reset.
func New(game *dodge.Game, images assets.Images, logger *log.Logger) *Game {
	return &Game{
		game:       game,
		clock:      core.SystemClock{},
		keys:       core.NewKeyState(0, 0), // real key-up events, no hold window
		oneShot:    core.NewInputFrame(),
		background: ebiten.NewImageFromImage(images.Background),
		character:  ebiten.NewImageFromImage(images.Character),
		face:       text.NewGoXFace(basicfont.Face7x13),
		logger:     logger,
	}
}

// SetDebug toggles the TPS readout.
func (g *Game) SetDebug(on bool) {
	g.debug = on
}

// Update reads input and advances the simulation by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.notice != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.notice = nil
			g.oneShot.Set(core.ActionRestart)
		}
		if g.notice != nil {
			return nil
		}
	}

	now := g.clock.Now()
	for k, a := range directions {
		switch {
		case inpututil.IsKeyJustPressed(k):
			g.keys.Press(a, now)
		case inpututil.IsKeyJustReleased(k):
			g.keys.Release(a)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.oneShot.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.oneShot.Set(core.ActionRestart)
	}

	g.keys.Apply(&g.oneShot)
	res := g.game.Step(g.oneShot)
	g.oneShot.Clear()

	if ev, ok := res.GameOver(); ok {
		g.notice = &ev
		g.keys.ReleaseAll()
		g.logger.Info("run ended", "score", ev.Score)
	}
	return nil
}

// Draw renders the canvas, sprites and overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	world := g.game.World()
	cfg := world.Config()

	drawImageRect(screen, g.background, 0, 0, cfg.Canvas.Width, cfg.Canvas.Height)

	ch := world.Character()
	drawImageRect(screen, g.character, ch.X, ch.Y, ch.Width, ch.Height)

	for _, o := range world.Obstacles() {
		vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), float32(o.Size), float32(o.Size), obstacleColor, false)
	}

	g.drawText(screen, fmt.Sprintf("Score: %d", world.Score()), 10, 10)
	g.drawText(screen, fmt.Sprintf("Spd: x%.1f  Every: %.1fs", world.Multiplier(), world.SpawnInterval().Seconds()), 10, 28)

	switch {
	case g.notice != nil:
		g.drawModal(screen, cfg.Canvas.Width, cfg.Canvas.Height,
			fmt.Sprintf("Game Over! Your score: %d", g.notice.Score),
			"Press Enter to play again")
	case g.game.State().Paused:
		g.drawModal(screen, cfg.Canvas.Width, cfg.Canvas.Height, "PAUSED", "Press P to resume")
	}

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f", ebiten.ActualTPS()), int(cfg.Canvas.Width)-60, 10)
	}
}

// Layout fixes the logical screen to the canvas; Ebitengine scales it to
// the window.
func (g *Game) Layout(_, _ int) (int, int) {
	cfg := g.game.World().Config()
	return int(cfg.Canvas.Width), int(cfg.Canvas.Height)
}

func drawImageRect(dst, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	dst.DrawImage(img, op)
}

func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(dst, s, g.face, op)
}

func (g *Game) drawCentered(dst *ebiten.Image, s string, canvasW, y float64) {
	w, _ := text.Measure(s, g.face, 0)
	g.drawText(dst, s, (canvasW-w)/2, y)
}

// drawModal dims the canvas and shows a two-line message box.
func (g *Game) drawModal(dst *ebiten.Image, canvasW, canvasH float64, title, subtitle string) {
	vector.DrawFilledRect(dst, 0, 0, float32(canvasW), float32(canvasH), overlayColor, false)

	const boxW, boxH = 320.0, 90.0
	x, y := (canvasW-boxW)/2, (canvasH-boxH)/2
	vector.DrawFilledRect(dst, float32(x), float32(y), boxW, boxH, panelColor, false)

	g.drawCentered(dst, title, canvasW, y+25)
	g.drawCentered(dst, subtitle, canvasW, y+55)
}
