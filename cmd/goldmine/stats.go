package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/termgold/goldmine/internal/economy"
	"github.com/termgold/goldmine/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the run-history leaderboard",
	Long: `Display the top 10 finished runs, ranked by total gold earned.

Examples:
  goldmine stats
  goldmine stats --db ./runs.db`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Terminal Gold Mine")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'goldmine play' to record the first run!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-14s  %-8s  %-8s  %-6s  %-9s  %s\n",
		"Rank", "Gold Earned", "Clicks", "Upgrades", "Achv", "Duration", "Date")
	fmt.Printf("  %-4s  %-14s  %-8s  %-8s  %-6s  %-9s  %s\n",
		"----", "-----------", "------", "--------", "----", "--------", "----")

	// Print runs
	for i, run := range runs {
		duration := (time.Duration(run.DurationSecs) * time.Second).String()
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-14s  %-8s  %-8d  %-6d  %-9s  %s\n",
			i+1,
			economy.FormatGoldExact(run.LifetimeEarned),
			humanize.Comma(int64(run.Clicks)),
			run.UpgradesOwned,
			run.Achievements,
			duration,
			dateStr)
	}

	// Show best run
	fmt.Println()
	best, err := store.BestLifetime()
	if err == nil {
		fmt.Printf("Best: %s gold\n", economy.FormatGoldExact(best))
	}
}
