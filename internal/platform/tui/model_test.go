package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) (GameModel, *fakeGame, *core.ManualClock) {
	t.Helper()
	game := &fakeGame{}
	clock := core.NewManualClock(epoch)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewGameModel(game, cfg, Options{Clock: clock})
	m.Init()
	return m, game, clock
}

func send(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameModelInitResetsGame(t *testing.T) {
	_, game, _ := newTestModel(t)
	if game.resets != 1 {
		t.Errorf("resets = %d, expected 1", game.resets)
	}
}

func TestGameModelHeldKeyExpires(t *testing.T) {
	m, game, clock := newTestModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = send(t, m, TickMsg(clock.Now()))
	if !game.lastFrame()[core.ActionLeft] {
		t.Fatal("left should be held on the first tick")
	}

	clock.Advance(200 * time.Millisecond)
	m = send(t, m, TickMsg(clock.Now()))
	if !game.lastFrame()[core.ActionLeft] {
		t.Fatal("left should still be held within the hold window")
	}

	clock.Advance(150 * time.Millisecond)
	send(t, m, TickMsg(clock.Now()))
	if game.lastFrame()[core.ActionLeft] {
		t.Error("left should be released once repeats stop")
	}
}

func TestGameModelOppositeKeyReleases(t *testing.T) {
	m, game, clock := newTestModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	send(t, m, TickMsg(clock.Now()))

	frame := game.lastFrame()
	if frame[core.ActionLeft] || !frame[core.ActionRight] {
		t.Errorf("frame = %v, expected only Right", frame)
	}
}

func TestGameModelPauseIsOneShot(t *testing.T) {
	m, game, clock := newTestModel(t)

	m = send(t, m, runeKey('p'))
	m = send(t, m, TickMsg(clock.Now()))
	if !game.lastFrame()[core.ActionPause] {
		t.Fatal("pause should reach the next tick")
	}

	send(t, m, TickMsg(clock.Now()))
	if game.lastFrame()[core.ActionPause] {
		t.Error("pause should not repeat on later ticks")
	}
}

func TestGameModelGameOverNotice(t *testing.T) {
	m, game, clock := newTestModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	game.endNext = true
	m = send(t, m, TickMsg(clock.Now()))

	ev, ok := m.Notice()
	if !ok || ev.Score != 42 {
		t.Fatalf("notice = %+v, %v; expected score 42", ev, ok)
	}
	if !strings.Contains(m.View(), "Game Over! Your score: 42") {
		t.Error("view should show the game-over notice")
	}

	// The notice holds the game
	steps := len(game.frames)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(t, m, TickMsg(clock.Now()))
	if len(game.frames) != steps {
		t.Fatal("game should not step while the notice is shown")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := m.Notice(); ok {
		t.Fatal("enter should dismiss the notice")
	}
	send(t, m, TickMsg(clock.Now()))

	frame := game.lastFrame()
	if !frame[core.ActionRestart] {
		t.Error("dismissing should restart the run")
	}
	if frame[core.ActionLeft] || frame[core.ActionRight] {
		t.Errorf("keys should be released at game over, frame = %v", frame)
	}
}

func TestGameModelBackAndQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	back := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.BackToMenu() {
		t.Error("esc should request the menu")
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestGameModelResizeReservesHelpRow(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 30 {
		t.Errorf("view has %d lines, expected 30", len(lines))
	}
	if !strings.Contains(lines[len(lines)-1], "pause") {
		t.Errorf("last line should be the help footer, got %q", lines[len(lines)-1])
	}
}

func TestGameModelQueuesReloadedConfig(t *testing.T) {
	m, game, _ := newTestModel(t)

	cfg := config.DefaultDodgeConfig()
	cfg.Character.Speed = 9
	send(t, m, ConfigReloadedMsg{Path: "dodge.yaml", Config: cfg})

	if len(game.queued) != 1 || game.queued[0].Character.Speed != 9 {
		t.Errorf("queued = %+v", game.queued)
	}
}

func TestGameModelScreenshot(t *testing.T) {
	m, _, _ := newTestModel(t)

	path, err := m.saveScreenshot(t.TempDir())
	if err != nil {
		t.Fatalf("saveScreenshot: %v", err)
	}
	if !strings.HasSuffix(path, "tui-fake_20240101_000000.txt") {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "fake") {
		t.Errorf("screenshot should hold the rendered frame, got %q", string(data)[:10])
	}
}
