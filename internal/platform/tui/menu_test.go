package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

func testCatalog() []levels.Level {
	return []levels.Level{
		{ID: "one", Name: "First", Plan: []string{"@ o"}},
		{ID: "two", Name: "Second", Plan: []string{"@  o", "xxxx"}},
		{ID: "three", Name: "Third", Plan: []string{"@o"}},
	}
}

func sendMenu(t *testing.T, m MenuModel, msgs ...tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(MenuModel)
	}
	return m, cmd
}

func TestMenuCursorStartsOnCurrent(t *testing.T) {
	tests := []struct {
		current  string
		expected string
	}{
		{"two", "two"},
		{"three", "three"},
		{"", "one"},
		{"missing", "one"},
	}

	for _, tc := range tests {
		t.Run(tc.current, func(t *testing.T) {
			m := NewMenuModel(testCatalog(), tc.current, core.DefaultConfig())
			m, cmd := sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			if cmd == nil {
				t.Error("selecting a level should quit the menu")
			}
			if m.Selected() == nil || m.Selected().ID != tc.expected {
				t.Errorf("Selected() = %v, expected %q", m.Selected(), tc.expected)
			}
		})
	}
}

func TestMenuNavigation(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.Msg
		expected string
	}{
		{"down", []tea.Msg{tea.KeyMsg{Type: tea.KeyDown}}, "two"},
		{"down clamps", []tea.Msg{runeKey('j'), runeKey('j'), runeKey('j'), runeKey('j')}, "three"},
		{"up clamps", []tea.Msg{tea.KeyMsg{Type: tea.KeyUp}}, "one"},
		{"down then up", []tea.Msg{runeKey('s'), runeKey('s'), runeKey('k')}, "two"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMenuModel(testCatalog(), "one", core.DefaultConfig())
			m, _ = sendMenu(t, m, tc.keys...)
			m, _ = sendMenu(t, m, runeKey(' '))
			if m.Selected() == nil || m.Selected().ID != tc.expected {
				t.Errorf("Selected() = %v, expected %q", m.Selected(), tc.expected)
			}
		})
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(testCatalog(), "", core.DefaultConfig())
	m, cmd := sendMenu(t, m, runeKey('q'))
	if cmd == nil {
		t.Error("q should return a quit command")
	}
	if !m.IsQuitting() {
		t.Error("IsQuitting() = false after q")
	}
	if m.Selected() != nil {
		t.Errorf("Selected() = %v after quit, expected nil", m.Selected())
	}
	if m.View() != "" {
		t.Error("View() should be empty once quitting")
	}
}

func TestMenuEmptyCatalog(t *testing.T) {
	m := NewMenuModel(nil, "", core.DefaultConfig())
	m, cmd := sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.Selected() != nil {
		t.Error("selecting from an empty catalog should do nothing")
	}
	if !strings.Contains(m.View(), "No levels found.") {
		t.Error("empty catalog view should say no levels were found")
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(testCatalog(), "two", core.DefaultConfig())
	m, _ = sendMenu(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	if m.Config().ScreenW != 60 || m.Config().ScreenH != 20 {
		t.Errorf("Config() = %+v, expected 60x20 after resize", m.Config())
	}

	view := m.View()
	for _, want := range []string{"First", "Second", "Third", "> ", "4x2", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q:\n%s", want, view)
		}
	}
}
