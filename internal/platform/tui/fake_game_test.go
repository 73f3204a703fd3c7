package tui

import (
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

const fakeGameID = "tui-fake"

// fakeGame records the frames it is stepped with and ends a run when told.
type fakeGame struct {
	resets  int
	frames  []map[core.Action]bool
	endNext bool
	queued  []config.DodgeConfig
	preset  config.DifficultyPreset
}

func (g *fakeGame) ID() string { return fakeGameID }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState { return core.GameState{Score: len(g.frames)} }
func (g *fakeGame) QueueConfig(cfg config.DodgeConfig) {
	g.queued = append(g.queued, cfg)
}
func (g *fakeGame) SetPreset(p config.DifficultyPreset) { g.preset = p }

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	actions := make(map[core.Action]bool, len(in.Actions))
	for a, on := range in.Actions {
		actions[a] = on
	}
	g.frames = append(g.frames, actions)

	res := core.StepResult{State: g.State()}
	if g.endNext {
		g.endNext = false
		res.Events = []core.Event{{Kind: core.EventGameOver, Score: 42}}
	}
	return res
}

func (g *fakeGame) lastFrame() map[core.Action]bool {
	if len(g.frames) == 0 {
		return nil
	}
	return g.frames[len(g.frames)-1]
}

// lastFake is the most recent fakeGame built by the registry factory.
var lastFake *fakeGame

func init() {
	registry.Register(fakeGameID, func() registry.Game {
		lastFake = &fakeGame{}
		return lastFake
	})
}
