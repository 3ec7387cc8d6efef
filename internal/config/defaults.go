package config

import (
	_ "embed"
)

//go:embed defaults/balance.yaml
var defaultBalanceYAML []byte

// DefaultBalance returns the compiled-in balance values. Used as the final
// fallback when no YAML can be read or parsed.
func DefaultBalance() Balance {
	return Balance{
		Click: ClickConfig{
			BasePower:  1.0,
			CooldownMS: 500,
		},
		Tick: TickConfig{
			MaxStepSeconds: 1.0,
		},
		Upgrades: []UpgradeSpec{
			{ID: "pickaxe", Name: "Pickaxe", Description: "Basic mining tool (+0.1 gold/sec)", Category: "passive", BaseCost: 10, CostMult: 1.15, Effect: 0.1},
			{ID: "shovel", Name: "Shovel", Description: "Dig faster (+0.5 gold/sec)", Category: "passive", BaseCost: 50, CostMult: 1.15, Effect: 0.5},
			{ID: "drill", Name: "Drill", Description: "Mechanical mining (+2.0 gold/sec)", Category: "passive", BaseCost: 250, CostMult: 1.15, Effect: 2.0},
			{ID: "excavator", Name: "Excavator", Description: "Heavy machinery (+8.0 gold/sec)", Category: "passive", BaseCost: 1000, CostMult: 1.15, Effect: 8.0},
			{ID: "mine_shaft", Name: "Mine Shaft", Description: "Deep mining operation (+30.0 gold/sec)", Category: "passive", BaseCost: 5000, CostMult: 1.15, Effect: 30.0},
			{ID: "gold_factory", Name: "Gold Factory", Description: "Automated gold production (+100.0 gold/sec)", Category: "passive", BaseCost: 25000, CostMult: 1.15, Effect: 100.0},
			{ID: "strong_arms", Name: "Strong Arms", Description: "Better swinging (+1 gold per click)", Category: "click", BaseCost: 25, CostMult: 1.2, Effect: 1.0},
			{ID: "steel_tools", Name: "Steel Tools", Description: "Sharper equipment (+2 gold per click)", Category: "click", BaseCost: 100, CostMult: 1.2, Effect: 2.0},
			{ID: "power_gloves", Name: "Power Gloves", Description: "Enhanced grip (+5 gold per click)", Category: "click", BaseCost: 500, CostMult: 1.2, Effect: 5.0},
			{ID: "hydraulic_hammer", Name: "Hydraulic Hammer", Description: "Mechanized clicking (+10 gold per click)", Category: "click", BaseCost: 2500, CostMult: 1.2, Effect: 10.0},
			{ID: "diamond_drill_bit", Name: "Diamond Drill Bit", Description: "Ultimate mining power (+25 gold per click)", Category: "click", BaseCost: 10000, CostMult: 1.2, Effect: 25.0},
		},
	}
}

// DefaultBalanceYAML returns the embedded default YAML, for users who want a
// starting point for a custom balance file.
func DefaultBalanceYAML() []byte {
	return defaultBalanceYAML
}
