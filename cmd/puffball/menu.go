package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/puffball-game/puffball/internal/platform/tui"
	"github.com/puffball-game/puffball/internal/storage"
)

// runMenu is the default mode: pick a level, play it, come back.
func runMenu(_ *cobra.Command, _ []string) {
	levels, cfg, err := loadSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}

	rt := terminalRuntime()

	for {
		menuResult, err := tui.RunMenu(levels, store, rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		rt = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsResults {
			goBack, resErr := tui.RunResults(levels, store, rt.TickRate, rt.ScreenW, rt.ScreenH)
			if resErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", resErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from results
		}

		if menuResult.Level == nil {
			break
		}

		if err := tui.RunPlay(menuResult.Level, cfg, rt, store); err != nil {
			fmt.Fprintf(os.Stderr, "Error running level: %v\n", err)
		}

		// Loop back to the picker
	}

	if store != nil {
		store.Close()
	}
}
