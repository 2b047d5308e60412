package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a level.
When you quit a level you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play level
  Q/Esc        - Quit

Examples:
  platformer menu
  platformer menu --fps 30
  platformer menu --levels ./levels`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	catalog, err := levels.Catalog(flagLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := interactiveLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := terminalConfig()
	current := ""

	for {
		result, err := tui.RunMenu(catalog, current, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep any size changes
		cfg = result.Config
		if result.Quit || result.LevelID == "" {
			break
		}
		current = result.LevelID

		platformer.SetLevel(current)
		game, err := registry.Create(platformer.GameID, registry.WithLogger(logger))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		logger.Info("starting", "level", current)
		if err := tui.Run(game, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
