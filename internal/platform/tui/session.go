package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

// presetter is implemented by games whose difficulty preset can be chosen
// per instance.
type presetter interface {
	SetPreset(preset config.DifficultyPreset)
}

// SessionModel manages the full session flow: preset menu -> game -> menu.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	gameID    string
	config    core.RuntimeConfig
	opts      Options
	menu      MenuModel
	gameModel *GameModel
	inGame    bool
	quitting  bool
	err       error
}

// NewSessionModel creates a session that opens on the preset menu. A
// non-empty preset skips the menu and starts the game right away.
func NewSessionModel(gameID string, cfg core.RuntimeConfig, preset config.DifficultyPreset, opts Options) SessionModel {
	m := SessionModel{
		gameID: gameID,
		config: cfg,
		opts:   opts.withDefaults(),
		menu:   NewMenuModel(cfg),
	}
	if preset != "" {
		m.startGame(preset)
	}
	return m
}

// startGame creates the game with the chosen preset.
func (m *SessionModel) startGame(preset config.DifficultyPreset) {
	game, err := registry.Create(m.gameID)
	if err != nil {
		m.err = err
		m.quitting = true
		return
	}
	if p, ok := game.(presetter); ok {
		p.SetPreset(preset)
	}

	gm := NewGameModel(game, m.config, m.opts)
	m.gameModel = &gm
	m.inGame = true
	m.opts.Logger.Debug("game started", "game", m.gameID, "preset", preset)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.quitting {
		return tea.Quit
	}

	cmds := []tea.Cmd{watchCmd(m.opts.Watcher)}
	if m.inGame {
		cmds = append(cmds, m.gameModel.Init())
	} else {
		cmds = append(cmds, m.menu.Init())
	}
	return tea.Batch(cmds...)
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height

	case ConfigReloadedMsg:
		// A game created later loads the file itself
		if m.inGame {
			m = m.forwardToGame(msg)
		}
		return m, watchCmd(m.opts.Watcher)

	case ConfigErrorMsg:
		m.opts.Logger.Error("config reload failed", "error", msg.Err)
		return m, watchCmd(m.opts.Watcher)
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) forwardToGame(msg tea.Msg) SessionModel {
	newModel, _ := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}
	return m
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if preset := m.menu.Selected(); preset != "" {
		m.startGame(preset)
		if m.quitting {
			return m, tea.Quit
		}
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.inGame = false
		m.gameModel = nil
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}

	return m.menu.View()
}

// InGame reports whether a game is running.
func (m SessionModel) InGame() bool {
	return m.inGame
}

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}

// Run starts a local session on the terminal.
func Run(gameID string, cfg core.RuntimeConfig, preset config.DifficultyPreset, opts Options) error {
	model := NewSessionModel(gameID, cfg, preset, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if sm, ok := final.(SessionModel); ok && sm.Err() != nil {
		return fmt.Errorf("session for %s: %w", gameID, sm.Err())
	}
	return nil
}
