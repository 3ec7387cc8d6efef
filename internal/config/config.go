// Package config provides YAML-based balance configuration for the gold
// mine: the upgrade catalog, click tuning, and tick limits.
package config

import (
	"fmt"
	"time"

	"github.com/termgold/goldmine/internal/economy"
)

// Balance contains every tunable number in the game.
type Balance struct {
	Click    ClickConfig   `yaml:"click"`
	Tick     TickConfig    `yaml:"tick"`
	Upgrades []UpgradeSpec `yaml:"upgrades"`
}

// ClickConfig defines manual mining parameters.
type ClickConfig struct {
	BasePower  float64 `yaml:"base_power"`  // Gold per click before upgrades
	CooldownMS int     `yaml:"cooldown_ms"` // Minimum time between accepted clicks
}

// Cooldown returns the click cooldown as a duration.
func (c ClickConfig) Cooldown() time.Duration {
	return time.Duration(c.CooldownMS) * time.Millisecond
}

// TickConfig defines passive-accrual parameters.
type TickConfig struct {
	// MaxStepSeconds caps the elapsed time credited by a single tick so a
	// stalled terminal (suspend, heavy resize) cannot grant runaway catch-up
	// gold.
	MaxStepSeconds float64 `yaml:"max_step_seconds"`
}

// UpgradeSpec is the YAML shape of a single upgrade definition.
type UpgradeSpec struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Category    string  `yaml:"category"` // "passive" or "click"
	BaseCost    float64 `yaml:"base_cost"`
	CostMult    float64 `yaml:"cost_multiplier"`
	Effect      float64 `yaml:"effect"`
}

// Validate checks the balance values that the catalog builder does not cover.
func (b Balance) Validate() error {
	if b.Click.BasePower <= 0 {
		return fmt.Errorf("config: click base_power must be positive, got %g", b.Click.BasePower)
	}
	if b.Click.CooldownMS < 0 {
		return fmt.Errorf("config: click cooldown_ms must be non-negative, got %d", b.Click.CooldownMS)
	}
	if b.Tick.MaxStepSeconds <= 0 {
		return fmt.Errorf("config: tick max_step_seconds must be positive, got %g", b.Tick.MaxStepSeconds)
	}
	return nil
}

// Catalog builds the economy catalog from the configured upgrade specs.
func (b Balance) Catalog() (economy.Catalog, error) {
	upgrades := make([]economy.Upgrade, 0, len(b.Upgrades))
	for _, spec := range b.Upgrades {
		cat, err := economy.ParseCategory(spec.Category)
		if err != nil {
			return economy.Catalog{}, fmt.Errorf("config: upgrade %q: %w", spec.ID, err)
		}
		upgrades = append(upgrades, economy.Upgrade{
			ID:          spec.ID,
			Name:        spec.Name,
			Description: spec.Description,
			Category:    cat,
			BaseCost:    spec.BaseCost,
			CostMult:    spec.CostMult,
			Effect:      spec.Effect,
		})
	}
	return economy.NewCatalog(upgrades)
}
