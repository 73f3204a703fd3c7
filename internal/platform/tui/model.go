package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

// Terminals report presses and auto-repeats but no releases. A key counts
// as held until its repeats stop arriving.
const (
	DefaultInitialHold = 300 * time.Millisecond
	DefaultRepeatHold  = 80 * time.Millisecond
)

// ConfigReloadedMsg carries a config picked up by the file watcher.
type ConfigReloadedMsg struct {
	Path   string
	Config config.DodgeConfig
}

// ConfigErrorMsg reports a config file that failed to reload.
type ConfigErrorMsg struct {
	Err error
}

// configQueuer is implemented by games that accept a config for their next run.
type configQueuer interface {
	QueueConfig(cfg config.DodgeConfig)
}

// Options tunes the session and its game models. Zero values select the
// defaults. Watcher is read by the session, which forwards reloads to the
// running game.
type Options struct {
	Clock       core.Clock
	Logger      *log.Logger
	Watcher     *config.Watcher
	InitialHold time.Duration
	RepeatHold  time.Duration
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = core.SystemClock{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.InitialHold == 0 {
		o.InitialHold = DefaultInitialHold
	}
	if o.RepeatHold == 0 {
		o.RepeatHold = DefaultRepeatHold
	}
	return o
}

// GameModel runs a single game inside Bubble Tea. The bottom row of the
// terminal is reserved for the key help footer.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	clock     core.Clock
	logger    *log.Logger
	keys      *core.KeyState
	oneShot   core.InputFrame // Pause/restart presses for the next tick only
	keyMapper *KeyMapper
	help      help.Model
	gameState core.GameState
	notice    *core.Event // Game-over waiting for acknowledgement

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	opts = opts.withDefaults()

	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:    cfg,
		clock:     opts.Clock,
		logger:    opts.Logger,
		keys:      core.NewKeyState(opts.InitialHold, opts.RepeatHold),
		oneShot:   core.NewInputFrame(),
		keyMapper: NewKeyMapper(),
		help:      h,
	}
}

func playfieldHeight(screenH int) int {
	return max(1, screenH-1)
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// watchCmd waits for the next reload result from w.
func watchCmd(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Configs:
			if !ok {
				return nil
			}
			return ConfigReloadedMsg{Path: w.Path(), Config: cfg}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return ConfigErrorMsg{Err: err}
		}
	}
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case ConfigReloadedMsg:
		if q, ok := m.game.(configQueuer); ok {
			q.QueueConfig(msg.Config)
			m.logger.Info("config reloaded, applies next run", "path", msg.Path)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		if path, err := m.saveScreenshot(screenshotDir()); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		m.backToMenu = true
		return m, nil
	}

	// The game-over notice swallows input until it is acknowledged
	if m.notice != nil {
		if action == core.ActionConfirm || action == core.ActionRestart {
			m.notice = nil
			m.oneShot.Set(core.ActionRestart)
		}
		return m, nil
	}

	switch {
	case IsDirection(action):
		m.keys.Press(action, m.clock.Now())
	case action == core.ActionPause, action == core.ActionRestart:
		m.oneShot.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.notice == nil {
		m.keys.Expire(m.clock.Now())
		m.keys.Apply(&m.oneShot)

		result := m.game.Step(m.oneShot)
		m.gameState = result.State

		if ev, ok := result.GameOver(); ok {
			m.notice = &ev
			m.keys.ReleaseAll()
			m.logger.Debug("run ended", "game", m.game.ID(), "score", ev.Score)
		}
	}

	m.oneShot.Clear()
	return m, tickCmd(m.config.TickRate)
}

// screenshotDir returns ~/.arcade/screenshots, or the working directory
// when home is unknown.
func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".arcade", "screenshots")
}

// saveScreenshot writes the current frame as plain text into dir.
func (m GameModel) saveScreenshot(dir string) (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	timestamp := m.clock.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the game with the help footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.notice != nil {
		m.screen.DrawMessage(
			fmt.Sprintf("Game Over! Your score: %d", m.notice.Score),
			"Enter: play again  Esc: menu",
		)
	}

	return RenderScreen(m.screen) + "\n" + m.help.ShortHelpView(m.keyMapper.Keys().ShortHelp())
}

// Notice returns the unacknowledged game-over event, if any.
func (m GameModel) Notice() (core.Event, bool) {
	if m.notice == nil {
		return core.Event{}, false
	}
	return *m.notice, true
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
