package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	menuDescStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel lets the player pick a difficulty preset before a run.
type MenuModel struct {
	items     []config.DifficultyPreset
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	help      help.Model
	quitting  bool
	selected  config.DifficultyPreset
}

// NewMenuModel creates a preset menu with the cursor on "normal".
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		items:     config.Presets,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
	for i, p := range m.items {
		if p == config.DifficultyNormal {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit || action == core.ActionBack {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, len(m.items)-1)
	case core.ActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(m.items)-1)
	case core.ActionConfirm:
		if len(m.items) > 0 {
			m.selected = m.items[m.cursor]
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  D O D G E  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a difficulty", m.width))
	b.WriteString("\n\n")

	for i, p := range m.items {
		line := fmt.Sprintf("  %-7s %s", p, menuDescStyle.Render(p.Description()))
		if i == m.cursor {
			line = menuCursorStyle.Render(fmt.Sprintf("> %-7s", p)) + " " + menuDescStyle.Render(p.Description())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.ShortHelpView(m.keyMapper.Keys().MenuHelp()), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen preset, or "" while the player is choosing.
func (m MenuModel) Selected() config.DifficultyPreset {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
