package platformer

import (
	"errors"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// GameID is the registry ID of the platformer.
const GameID = "platformer"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// levelID and levelsDir select the level played by registry-created games.
var (
	levelID   string
	levelsDir string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetLevel selects the level by ID. Empty selects the first catalog level.
func SetLevel(id string) {
	levelID = id
}

// SetLevelsDir sets the directory searched for user level files.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// Game drives a Level one tick at a time: it steers the player, runs every
// other actor, applies touches and counts down the finish delay.
type Game struct {
	def     levels.Level
	fixed   bool // def was given explicitly, skip catalog lookup
	level   *Level
	cfg     config.PlatformerConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	logger  *log.Logger

	fixedConfig bool // cfg was set with SetConfig

	tick       uint64
	paused     bool
	lastStatus Status
	finished   bool
	err        error
}

// New creates a game that plays the level selected with SetLevel.
func New() *Game {
	return &Game{logger: log.New(io.Discard)}
}

// NewWithLevel creates a game for an explicit level definition.
func NewWithLevel(def levels.Level) *Game {
	return &Game{def: def, fixed: true, logger: log.New(io.Discard)}
}

// SetLogger replaces the game logger. Nil discards output.
func (g *Game) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g.logger = logger
}

// SetConfig overrides the configuration loaded on Reset.
func (g *Game) SetConfig(cfg config.PlatformerConfig) {
	cfg.Validate()
	g.cfg = cfg
	g.fixedConfig = true
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// Level returns the level being played, or nil if loading failed.
func (g *Game) Level() *Level {
	return g.level
}

// Definition returns the catalog entry being played.
func (g *Game) Definition() levels.Level {
	return g.def
}

// Err returns the error from the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// Tick returns the number of simulated ticks since Reset.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Reset (re)loads configuration and rebuilds the level from its plan.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tick = 0
	g.paused = false
	g.finished = false
	g.lastStatus = StatusPlaying
	g.level = nil
	g.err = nil

	if !g.fixedConfig {
		cfg, err := config.LoadPlatformer(configPath)
		if err != nil {
			g.logger.Warn("could not load config, using defaults", "error", err)
			cfg = config.DefaultPlatformerConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPlatformerPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	if !g.fixed {
		def, err := selectLevel(levelsDir, levelID)
		if err != nil {
			g.err = err
			g.logger.Error("could not select level", "id", levelID, "error", err)
			return
		}
		g.def = def
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	level, err := BuildLevel(g.def, g.cfg.Level.FinishDelay, g.rng)
	if err != nil {
		g.err = err
		g.logger.Error("could not build level", "id", g.def.ID, "error", err)
		return
	}
	g.level = level

	g.logger.Info("level loaded",
		"id", g.def.ID,
		"width", level.Width(),
		"height", level.Height(),
		"actors", len(level.Actors()),
		"coins", g.CoinsLeft())
	if level.Player() == nil {
		g.logger.Warn("level has no player", "id", g.def.ID)
	}
}

func selectLevel(dir, id string) (levels.Level, error) {
	catalog, err := levels.Catalog(dir)
	if err != nil {
		return levels.Level{}, err
	}
	if id == "" {
		if len(catalog) == 0 {
			return levels.Level{}, errors.New("platformer: level catalog is empty")
		}
		return catalog[0], nil
	}
	return levels.Find(catalog, id)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.level == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.level.IsFinished() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.level.IsFinished() {
		g.paused = !g.paused
	}

	if g.paused || g.level.IsFinished() {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.Advance(g.frameTime(), ControlFromInput(in))

	return core.StepResult{State: g.State()}
}

// frameTime returns the simulated seconds covered by one tick.
func (g *Game) frameTime() float64 {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return g.cfg.Difficulty.TimeScale / float64(rate)
}

// Advance simulates elapsed seconds in sub-steps no longer than the
// configured max step.
func (g *Game) Advance(elapsed float64, ctl Control) {
	for elapsed > 0 {
		step := math.Min(elapsed, g.cfg.Physics.MaxStep)
		g.advanceStep(step, ctl)
		elapsed -= step
	}
}

// advanceStep runs one sub-step: every actor moves before touches for the
// step are resolved, and removed actors are compacted at the end.
func (g *Game) advanceStep(step float64, ctl Control) {
	level := g.level
	player := level.Player()
	phys := Physics{
		Gravity:     g.cfg.Physics.Gravity,
		JumpSpeed:   g.cfg.Physics.JumpSpeed,
		PlayerSpeed: g.cfg.Physics.PlayerSpeed,
	}

	for _, a := range level.Actors() {
		if a == player {
			a.Steer(step, ctl, phys, level)
			continue
		}
		a.Act(step, level)
	}

	if player != nil {
		if other := level.ActorAt(player); other != nil {
			level.PlayerTouched(other.Kind(), other)
		}
	}
	level.Compact()

	if level.Status() != StatusPlaying {
		level.FinishDelay -= step
	}
	g.logTransitions()
}

func (g *Game) logTransitions() {
	status := g.level.Status()
	if status != g.lastStatus {
		g.lastStatus = status
		g.logger.Info("level "+status.String(),
			"id", g.def.ID,
			"tick", g.tick,
			"coins", g.level.CoinsCollected())
	}
	if !g.finished && g.level.IsFinished() {
		g.finished = true
		g.logger.Debug("level finished", "id", g.def.ID, "tick", g.tick)
	}
}

// CoinsLeft returns the number of coins still in the level.
func (g *Game) CoinsLeft() int {
	if g.level == nil {
		return 0
	}
	n := 0
	for _, a := range g.level.Actors() {
		if a.Kind() == KindCoin {
			n++
		}
	}
	return n
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.level == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:    g.level.CoinsCollected(),
		GameOver: g.level.IsFinished(),
		Won:      g.level.Status() == StatusWon,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
