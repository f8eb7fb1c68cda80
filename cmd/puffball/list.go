package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/puffball-game/puffball/internal/level"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows the built-in levels plus any found in the --levels directory.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	levels, err := level.Catalog(flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range levels {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "ID", "Name", "Gems")
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "--", "----", "----")

	for _, l := range levels {
		source := ""
		if l.FilePath != "" {
			source = "  " + l.FilePath
		}
		fmt.Printf("  %-*s  %-24s  %4d%s\n", maxIDLen, l.ID, l.Name, l.GemCount(), source)
	}

	fmt.Println()
	fmt.Println("Run 'puffball play <id>' to play a level.")
}
