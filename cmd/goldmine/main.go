// goldmine is a terminal idle game: gold accrues on its own, clicks mine
// more, and upgrades with escalating costs compound both.
//
// Usage:
//
//	goldmine play              - Play in the current terminal
//	goldmine stats             - Show the run-history leaderboard
//	goldmine catalog           - Print the upgrade catalog and achievements
//	goldmine serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Simulation tick rate (default: 10)
//	--db <path>        - Run-history database (default: ~/.goldmine/runs.db)
//	--balance <path>   - Custom balance YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagBalance string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "goldmine",
	Short: "Terminal Gold Mine - An idle mining game in your terminal",
	Long: `Terminal Gold Mine is an incremental game played entirely in the
terminal. Gold accrues passively every second, SPACE mines more by hand,
and upgrades with geometrically escalating costs compound both. Milestone
achievements track your progress.

Available commands:
  play     - Play in the current terminal
  stats    - Show the run-history leaderboard
  catalog  - Print the upgrade catalog and achievement list
  serve    - Start SSH server for remote play

Examples:
  goldmine play
  goldmine play --fps 30
  goldmine play --balance ./my-balance.yaml
  goldmine stats
  goldmine serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 10, "Simulation tick rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.goldmine/runs.db", "Path to run-history database")
	rootCmd.PersistentFlags().StringVar(&flagBalance, "balance", "", "Path to custom balance YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(serveCmd)
}
