package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// DefaultHoldWindow is how long a movement key counts as held after its last
// press. Terminals send no key-up events, only auto-repeat presses, so a
// window slightly longer than the repeat delay keeps the player running.
const DefaultHoldWindow = 150 * time.Millisecond

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	held      map[core.Action]int // Ticks left for each held action
	pressed   core.InputFrame     // One-shot actions for the next tick
	holdTicks int
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-1)),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		logger:    logger,
		held:      make(map[core.Action]int),
		pressed:   core.NewInputFrame(),
		holdTicks: holdTicks(DefaultHoldWindow, cfg.TickRate),
	}
}

// holdTicks converts a hold window to a whole number of ticks, at least one.
func holdTicks(window time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	n := (window.Milliseconds()*int64(tickRate) + 999) / 1000
	return core.Max(1, int(n))
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Debug("quit requested", "score", m.gameState.Score)
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	if IsHeld(action) {
		m.press(action)
	} else {
		m.pressed.Set(action)
	}
	return m, nil
}

// press starts or extends the hold window of a movement action. Running one
// way releases the other.
func (m Model) press(action core.Action) {
	switch action {
	case core.ActionLeft:
		delete(m.held, core.ActionRight)
	case core.ActionRight:
		delete(m.held, core.ActionLeft)
	}
	m.held[action] = m.holdTicks
}

// handleResize processes window resize events. The game scrolls its own
// viewport, so no reset is needed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-1))
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.frame())
	m.gameState = result.State

	m.release()
	m.pressed.Clear()

	return m, tickCmd(m.config.TickRate)
}

// frame returns the input for the next tick: held actions plus one-shots.
func (m Model) frame() core.InputFrame {
	in := m.pressed.Clone()
	for action := range m.held {
		in.Set(action)
	}
	return in
}

// release counts down hold windows and drops the expired ones.
func (m Model) release() {
	for action, left := range m.held {
		if left <= 1 {
			delete(m.held, action)
			continue
		}
		m.held[action] = left - 1
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := helpStyle.Render(m.help.View(m.keys))
	if rows := m.config.ScreenH - lipgloss.Height(helpView); rows > 0 && rows != m.screen.Height() {
		m.screen.Resize(m.config.ScreenW, rows)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpView
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
