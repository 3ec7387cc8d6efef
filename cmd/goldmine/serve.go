package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/termgold/goldmine/internal/config"
	"github.com/termgold/goldmine/internal/game"
	"github.com/termgold/goldmine/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gold mine SSH server",
	Long: `Start an SSH server that lets users connect and play remotely.

Each SSH connection gets its own game; finished runs land in the shared
run-history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.goldmine/host_key

Examples:
  goldmine serve                           # Listen on :23235 with auto-generated key
  goldmine serve --ssh :2222               # Listen on port 2222
  goldmine serve --host-key ./my_host_key  # Use specific host key
  goldmine serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
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

	rules := game.Rules{
		BaseClickPower: balance.Click.BasePower,
		ClickCooldown:  balance.Click.Cooldown(),
		MaxTickStep:    balance.Tick.MaxStepSeconds,
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(cfg, catalog, rules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
