package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/puffball-game/puffball/internal/level"
	"github.com/puffball-game/puffball/internal/storage"
)

var resultsCmd = &cobra.Command{
	Use:   "results [level]",
	Short: "Show attempt history",
	Long: `Display recent attempts. With a level ID, shows that level's history
and best time; without one, shows the most recent attempts across all levels.

Examples:
  puffball results
  puffball results 01-first-steps`,
	Args: cobra.MaximumNArgs(1),
	Run:  runResults,
}

func runResults(cmd *cobra.Command, args []string) {
	levelID := ""
	if len(args) > 0 {
		levelID = args[0]
	}

	if levelID != "" {
		levels, err := level.Catalog(flagLevelsDir)
		if err == nil {
			known := false
			for _, l := range levels {
				if l.ID == levelID {
					known = true
					break
				}
			}
			if !known {
				fmt.Fprintf(os.Stderr, "Warning: %q is not in the current catalog; showing stored history anyway.\n", levelID)
			}
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.RecentResults(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	if levelID != "" {
		fmt.Printf("Attempts - %s\n", levelID)
	} else {
		fmt.Println("Recent attempts")
	}
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No attempts recorded yet.")
		fmt.Println()
		fmt.Println("Run 'puffball' to play a level.")
		return
	}

	fmt.Printf("  %-18s  %-10s  %-12s  %-7s  %-8s  %s\n", "Level", "Outcome", "Reason", "Gems", "Time", "Date")
	fmt.Printf("  %-18s  %-10s  %-12s  %-7s  %-8s  %s\n", "-----", "-------", "------", "----", "----", "----")

	for _, r := range results {
		gems := fmt.Sprintf("%d/%d", r.Gems, r.GemsTotal)
		secs := fmt.Sprintf("%.1fs", float64(r.Ticks)/float64(flagFPS))
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-18s  %-10s  %-12s  %-7s  %-8s  %s\n",
			r.LevelID, r.Outcome, r.Reason, gems, secs, dateStr)
	}

	if levelID != "" {
		if best, err := store.BestTicks(levelID); err == nil && best > 0 {
			fmt.Println()
			fmt.Printf("Best: %.1fs\n", float64(best)/float64(flagFPS))
		}
	}
}
