package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/puffball-game/puffball/internal/config"
	"github.com/puffball-game/puffball/internal/core"
	"github.com/puffball-game/puffball/internal/level"
	"github.com/puffball-game/puffball/internal/platform/tui"
	"github.com/puffball-game/puffball/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a level",
	Long: `Start playing the specified level.

Controls:
  Arrows/WASD  - Thrust (burns mass)
  Esc          - Abandon the attempt
  R            - Retry (after the attempt ends)
  Q/Ctrl+C     - Quit

Difficulty presets scale thrust cost and pump recovery:
  easy   - Cheaper thrust, faster pumps
  normal - Default tuning
  hard   - Expensive thrust, slower pumps

Examples:
  puffball play 01-first-steps
  puffball play 03-minefield --difficulty easy
  puffball play my-level --levels ./levels
  puffball play 01-first-steps --config ./tuning.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// loadSetup loads the level catalog and game tuning shared by the play and
// menu flows.
func loadSetup() ([]*level.Level, config.Config, error) {
	levels, err := level.Catalog(flagLevelsDir)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("cannot load levels: %w", err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("cannot load config: %w", err)
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return nil, config.Config{}, fmt.Errorf("unknown difficulty %q (easy, normal, hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	return levels, cfg, nil
}

// terminalRuntime probes the terminal size for a runtime config.
func terminalRuntime() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	levelID := args[0]

	levels, cfg, err := loadSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var lvl *level.Level
	for _, l := range levels {
		if l.ID == levelID {
			lvl = l
			break
		}
	}
	if lvl == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'puffball list' to see available levels.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.RunPlay(lvl, cfg, terminalRuntime(), store)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
		os.Exit(1)
	}
}
