package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// recordingGame records the input of every Step.
type recordingGame struct {
	resets int
	inputs []core.InputFrame
}

func (g *recordingGame) ID() string { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }
func (g *recordingGame) Reset(cfg core.RuntimeConfig) { g.resets++ }
func (g *recordingGame) State() core.GameState { return core.GameState{} }
func (g *recordingGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "frame") }
func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{}
}

func (g *recordingGame) last() core.InputFrame {
	return g.inputs[len(g.inputs)-1]
}

func newTestModel(game *recordingGame) Model {
	return NewModel(game, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestHoldTicks(t *testing.T) {
	tests := []struct {
		window   time.Duration
		rate     int
		expected int
	}{
		{150 * time.Millisecond, 60, 9},
		{150 * time.Millisecond, 30, 5},
		{time.Millisecond, 60, 1},
		{0, 60, 1},
		{100 * time.Millisecond, 0, 6},
	}

	for _, tc := range tests {
		if got := holdTicks(tc.window, tc.rate); got != tc.expected {
			t.Errorf("holdTicks(%v, %d) = %d, expected %d", tc.window, tc.rate, got, tc.expected)
		}
	}
}

func TestModelInitResetsGame(t *testing.T) {
	game := &recordingGame{}
	m := newTestModel(game)

	if cmd := m.Init(); cmd == nil {
		t.Error("Init() should start the tick loop")
	}
	if game.resets != 1 {
		t.Errorf("resets = %d, expected 1", game.resets)
	}
}

func TestModelHeldKeys(t *testing.T) {
	game := &recordingGame{}
	m := newTestModel(game)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for range m.holdTicks {
		m = update(t, m, TickMsg{})
		if !game.last().Has(core.ActionRight) {
			t.Fatalf("tick %d: right should still be held", len(game.inputs))
		}
	}

	m = update(t, m, TickMsg{})
	if game.last().Has(core.ActionRight) {
		t.Error("right should be released after the hold window")
	}

	// A repeat press extends the window
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for range m.holdTicks {
		m = update(t, m, TickMsg{})
	}
	if !game.last().Has(core.ActionRight) {
		t.Error("repeat press should extend the hold window")
	}
}

func TestModelOppositeDirectionReleases(t *testing.T) {
	game := &recordingGame{}
	m := newTestModel(game)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	update(t, m, TickMsg{})

	in := game.last()
	if !in.Has(core.ActionLeft) || in.Has(core.ActionRight) {
		t.Errorf("input = %v, expected only left", in.Actions)
	}
}

func TestModelOneShotKeys(t *testing.T) {
	game := &recordingGame{}
	m := newTestModel(game)

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg{})
	if !game.last().Has(core.ActionPause) {
		t.Fatal("pause should reach the next tick")
	}

	update(t, m, TickMsg{})
	if game.last().Has(core.ActionPause) {
		t.Error("pause should fire only once")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&recordingGame{})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if view := next.View(); view != "" {
		t.Errorf("View() after quit = %q, expected empty", view)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&recordingGame{})
	m = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 10})

	view := m.View()
	if !strings.Contains(view, "frame") {
		t.Error("View() should contain the game frame")
	}
	if !strings.Contains(view, "quit") {
		t.Error("View() should contain the help line")
	}
	if m.screen.Width() != 50 || m.screen.Height() != 9 {
		t.Errorf("screen = %dx%d, expected 50x9", m.screen.Width(), m.screen.Height())
	}

	// Full help takes more rows and shrinks the playfield
	m = update(t, m, runeKey('?'))
	m.View()
	if m.screen.Height() >= 9 {
		t.Errorf("screen height = %d, expected less than 9 with full help", m.screen.Height())
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColored(0, 0, 'x', core.ColorRed)
	s.Set(1, 0, 'y')
	s.SetColored(0, 1, 'z', core.Color(200))

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen produced %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"x", "y", "z"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output missing %q", want)
		}
	}
}
