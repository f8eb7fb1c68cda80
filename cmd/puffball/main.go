// puffball is a terminal physics-puzzle game: steer an inflatable ball
// through walled levels, collect every gem, dodge the mines, and reach the
// flag before your mass runs out.
//
// Usage:
//
//	puffball                 - Pick a level interactively and play
//	puffball play <level>    - Play a specific level
//	puffball editor [file]   - Open the level editor
//	puffball list            - List available levels
//	puffball results [level] - Show attempt history
//	puffball serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--levels <dir>    - Extra levels directory (merged with built-ins)
//	--config <path>   - Custom physics config YAML
//	--db <path>       - Results database path (default: ~/.puffball/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagLevelsDir string
	flagConfig    string
	flagDBPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puffball",
	Short: "Puffball - an inflatable-ball physics puzzler for your terminal",
	Long: `Puffball is a terminal game about a ball whose size is its life:
thrusting burns mass, pump stations restore it, and both running empty
and overinflating end the attempt. Collect every gem and touch the flag.

Running with no arguments opens the interactive level picker.

Available commands:
  play     - Play a specific level directly
  editor   - Create or edit levels
  list     - Show all available levels
  results  - View attempt history
  serve    - Start SSH server for remote play

Examples:
  puffball
  puffball play 01-first-steps
  puffball editor my-level.yaml
  puffball serve --ssh :2222
  puffball results 01-first-steps`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Extra levels directory (merged with built-ins)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom physics config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.puffball/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
}
