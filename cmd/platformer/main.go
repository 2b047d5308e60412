// platformer is a terminal platformer: run through hand-drawn levels,
// collect every coin and dodge the fire.
//
// Usage:
//
//	platformer list              - List available levels
//	platformer play <level>      - Play a level
//	platformer menu              - Pick levels interactively
//	platformer sim <level>       - Run a level headless with held keys
//	platformer defaults          - Print the built-in config YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--levels <dir>        - Directory with extra level files
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file during interactive play
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - run, jump and collect coins in your terminal",
	Long: `Platformer is a small terminal platformer. Every level is a text plan
of walls, lava, coins and fireballs. Collect all coins to win, touch lava
or fire and you lose.

Available commands:
  list     - Show all available levels
  play     - Play a specific level
  menu     - Interactive level picker
  sim      - Run a level without a terminal UI
  defaults - Print the built-in config YAML

Examples:
  platformer list
  platformer play first-steps
  platformer menu --difficulty easy
  platformer sim drop --ticks 300 --hold right,jump`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return applyGameFlags()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (play/menu pick a time-based seed for 0; sim uses the value as given)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory with additional level YAML files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for interactive commands (default: no logs)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// applyGameFlags hands the global flags to the platformer package.
func applyGameFlags() error {
	switch flagDifficulty {
	case "", "easy", "normal", "hard", "fixed":
	default:
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)
	platformer.SetLevelsDir(flagLevels)
	return nil
}

// newLogger builds the CLI logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           level,
	}), nil
}

// interactiveLogger returns a logger that stays off the alt screen: it
// writes to --log-file when set and discards otherwise. The returned func
// closes the file.
func interactiveLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard)
		return logger, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		//nolint:errcheck // Already failing
		f.Close()
		return nil, nil, err
	}
	closeLog := func() {
		//nolint:errcheck // Best-effort close on exit
		f.Close()
	}
	return logger, closeLog, nil
}
