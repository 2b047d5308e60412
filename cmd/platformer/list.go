package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows the built-in levels followed by the levels found in --levels.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	catalog, err := levels.Catalog(flagLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(catalog) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()
	printLevels(os.Stdout, catalog)
	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to play a level.")
}

// printLevels writes the catalog as an aligned table.
func printLevels(w io.Writer, catalog []levels.Level) {
	// Calculate column widths
	maxIDLen, maxNameLen, maxAuthorLen := 2, 4, 6 // "ID", "Name", "Author" headers
	for _, lvl := range catalog {
		maxIDLen = max(maxIDLen, len(lvl.ID))
		maxNameLen = max(maxNameLen, len(lvl.Name))
		maxAuthorLen = max(maxAuthorLen, len(levelAuthor(lvl)))
	}

	row := func(id, name, size, author, source string) {
		fmt.Fprintf(w, "  %-*s  %-*s  %-7s  %-*s  %s\n",
			maxIDLen, id, maxNameLen, name, size, maxAuthorLen, author, source)
	}
	row("ID", "Name", "Size", "Author", "Source")
	row("--", "----", "----", "------", "------")

	for _, lvl := range catalog {
		source := "built-in"
		if lvl.FilePath != "" {
			source = lvl.FilePath
		}
		row(lvl.ID, lvl.Name, fmt.Sprintf("%dx%d", lvl.Width(), lvl.Height()), levelAuthor(lvl), source)
	}
}

// levelAuthor reads the author from level metadata, "-" when unset.
func levelAuthor(lvl levels.Level) string {
	if author := lvl.Metadata["author"]; author != "" {
		return author
	}
	return "-"
}
