package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

func sendMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestMenuStartsOnNormal(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != config.DifficultyNormal {
		t.Errorf("selected = %q, expected normal", m.Selected())
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	// Past the last item the cursor stays put
	for range len(config.Presets) + 2 {
		m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Selected(); got != config.Presets[len(config.Presets)-1] {
		t.Errorf("selected = %q, expected last preset", got)
	}

	m = NewMenuModel(core.DefaultConfig())
	for range len(config.Presets) + 2 {
		m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	m = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Selected(); got != config.Presets[0] {
		t.Errorf("selected = %q, expected first preset", got)
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	next, cmd := m.Update(runeKey('q'))
	if !next.(MenuModel).IsQuitting() || cmd == nil {
		t.Error("q should quit the menu")
	}
}

func TestMenuView(t *testing.T) {
	view := NewMenuModel(core.DefaultConfig()).View()
	for _, p := range config.Presets {
		if !strings.Contains(view, string(p)) {
			t.Errorf("menu should list %q", p)
		}
		if !strings.Contains(view, p.Description()) {
			t.Errorf("menu should describe %q", p)
		}
	}
}
