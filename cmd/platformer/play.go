package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a level",
	Long: `Start playing the specified level.

Controls:
  Left/Right, A/D  - Run
  Up/W/Space       - Jump
  P/Esc            - Pause
  R                - Restart (after the level finished)
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Time runs at 75%
  normal - Time runs at 100%
  hard   - Time runs at 125%
  fixed  - Keep the config's time_scale

Examples:
  platformer play first-steps
  platformer play drop --difficulty hard
  platformer play my-level --levels ./levels
  platformer play stairs --config ./my-platformer.yaml --log-file play.log`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	levelID := args[0]

	catalog, err := levels.Catalog(flagLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if _, err := levels.Find(catalog, levelID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'platformer list' to see available levels.")
		os.Exit(1)
	}

	logger, closeLog, err := interactiveLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	platformer.SetLevel(levelID)
	game, err := registry.Create(platformer.GameID, registry.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting", "level", levelID, "fps", flagFPS, "difficulty", flagDifficulty)
	if err := tui.Run(game, terminalConfig(), logger); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// terminalConfig returns the runtime config for the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
