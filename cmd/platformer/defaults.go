package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in config YAML",
	Long: `Print the embedded default configuration. Save the output to a file,
edit it and pass it back with --config.

Example:
  platformer defaults > my.yaml
  platformer play drop --config my.yaml`,
	Args: cobra.NoArgs,
	RunE: runDefaults,
}

func runDefaults(cmd *cobra.Command, _ []string) error {
	_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
	return err
}
