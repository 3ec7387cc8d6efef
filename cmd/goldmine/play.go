package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/termgold/goldmine/internal/config"
	"github.com/termgold/goldmine/internal/game"
	"github.com/termgold/goldmine/internal/platform/tui"
	"github.com/termgold/goldmine/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the gold mine",
	Long: `Start a run in the current terminal.

Controls:
  Space      - Mine gold (0.5s cooldown)
  Up/Down    - Select upgrade
  Enter      - Buy selected upgrade
  1/2/3      - Passive / Click / Achievements tab
  H          - Toggle help
  Q/Ctrl+C   - Quit (run summary is recorded)

Examples:
  goldmine play
  goldmine play --fps 30
  goldmine play --balance ./my-balance.yaml`,
	Run: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load balance and build the catalog
	balance, err := config.LoadBalance(flagBalance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading balance: %v\n", err)
		os.Exit(1)
	}

	catalog, err := balance.Catalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building catalog: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open run-history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	rules := game.Rules{
		BaseClickPower: balance.Click.BasePower,
		ClickCooldown:  balance.Click.Cooldown(),
		MaxTickStep:    balance.Tick.MaxStepSeconds,
	}
	engine := game.NewEngine(catalog, rules, time.Now())

	runErr := tui.Run(engine, store, tui.Options{
		TickRate: flagFPS,
		Width:    width,
		Height:   height,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
