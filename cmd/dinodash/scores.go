package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-dash/internal/save"
	"github.com/vovakirdan/dino-dash/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best recorded runs and the in-game top-5 board.

The run history lives in the database and keeps every finished run; the
top-5 board is what the game shows after a run and lives in the save
file.

Examples:
  dinodash scores
  dinodash scores --limit 25`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "How many runs to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Run History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dinodash play' to set the first score!")
	} else {
		fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
		fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")
		for i, entry := range runs {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, entry.Player, entry.Score, dateStr)
		}

		if best, bestErr := store.BestScore(); bestErr == nil {
			fmt.Println()
			fmt.Printf("Best: %d\n", best)
		}
	}

	// The in-game board from the snapshot, when present.
	saves := save.New(resolveSavePath(), loadGameConfig())
	snapshot, err := saves.Load()
	if err != nil || snapshot == nil || len(snapshot.Leaderboard) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Top 5 board:")
	for i, e := range snapshot.Leaderboard {
		fmt.Printf("  %d. %-16s %d\n", i+1, e.Name, e.Score)
	}
}
