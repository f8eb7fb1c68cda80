package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/puffball-game/puffball/internal/level"
	"github.com/puffball-game/puffball/internal/platform/tui"
)

var flagEditName string

var editCmd = &cobra.Command{
	Use:     "editor [file]",
	Aliases: []string{"edit"},
	Short:   "Create or edit a level",
	Long: `Open the level editor. With a file argument, edits that level;
without one, starts a fresh level saved to ./untitled.yaml.

Controls:
  Arrows/WASD  - Move the cursor
  Tab          - Cycle tool (wall, gem, pump, mine, flag, start)
  Space/Enter  - Place (walls take two corner presses)
  T            - Cycle wall texture
  X            - Delete the object under the cursor
  N            - Rename the level
  Ctrl+S       - Save
  Q/Ctrl+C     - Quit

Examples:
  puffball editor
  puffball editor levels/my-level.yaml
  puffball editor --name "Spiral of Doom"`,
	Args: cobra.MaximumNArgs(1),
	Run:  runEdit,
}

func init() {
	editCmd.Flags().StringVar(&flagEditName, "name", "", "Name for a newly created level")
}

func runEdit(cmd *cobra.Command, args []string) {
	var (
		lvl  *level.Level
		path string
	)

	if len(args) > 0 {
		path = args[0]
		loader := level.NewLoader(filepath.Dir(path))

		if _, err := os.Stat(path); err == nil {
			loaded, loadErr := loader.LoadFile(path)
			if loadErr != nil {
				fmt.Fprintf(os.Stderr, "Error loading level: %v\n", loadErr)
				os.Exit(1)
			}
			lvl = loaded
		}
	} else {
		path = "untitled.yaml"
	}

	if lvl == nil {
		name := flagEditName
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		lvl = level.New(name)
	}

	if err := tui.RunEditor(lvl, path, terminalRuntime()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", err)
		os.Exit(1)
	}
}
