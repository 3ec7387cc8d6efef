package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/termgold/goldmine/internal/achievements"
	"github.com/termgold/goldmine/internal/config"
	"github.com/termgold/goldmine/internal/economy"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the upgrade catalog and achievement list",
	Long:  `Shows every purchasable upgrade with its base cost and effect, plus all achievements.`,
	Run:   runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) {
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

	printUpgrades := func(title, unit string, cat economy.Category) {
		fmt.Println(title)
		fmt.Println()
		fmt.Printf("  %-20s  %-12s  %-6s  %s\n", "Upgrade", "Base Cost", "Mult", "Effect")
		fmt.Printf("  %-20s  %-12s  %-6s  %s\n", "-------", "---------", "----", "------")
		for _, u := range catalog.ByCategory(cat) {
			fmt.Printf("  %-20s  %-12s  x%-5.2f  +%s%s\n",
				u.Name,
				economy.FormatGoldExact(u.BaseCost),
				u.CostMult,
				economy.FormatGold(u.Effect),
				unit)
		}
		fmt.Println()
	}

	printUpgrades("Passive Upgrades (gold/sec)", "/sec", economy.Passive)
	printUpgrades("Click Upgrades (gold/click)", "/click", economy.Click)

	fmt.Println("Achievements")
	fmt.Println()
	for _, a := range achievements.All {
		fmt.Printf("  %-20s  %s\n", a.Name, a.Description)
	}
}
