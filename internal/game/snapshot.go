package game

import (
	"github.com/termgold/goldmine/internal/achievements"
	"github.com/termgold/goldmine/internal/economy"
)

// UpgradeRow is the render-ready projection of one catalog entry.
type UpgradeRow struct {
	ID          string
	Name        string
	Description string
	Effect      float64
	Owned       int
	NextCost    float64
	Affordable  bool
}

// AchievementRow is the render-ready projection of one milestone.
type AchievementRow struct {
	ID          string
	Name        string
	Description string
	Unlocked    bool
	Progress    float64
	Target      float64
}

// Snapshot is the read-only projection of the game the presentation layer
// renders once per frame. The engine remains the sole writer of State.
type Snapshot struct {
	Gold           float64
	LifetimeEarned float64
	PassiveRate    float64
	ClickPower     float64
	Clicks         uint64

	Passive       []UpgradeRow
	ClickUpgrades []UpgradeRow
	Achievements  []AchievementRow
	UnlockedCount int
	TotalOwned    int

	Selected  int
	ActiveTab Tab
}

// Snapshot captures the current state for rendering.
func (e *Engine) Snapshot() Snapshot {
	stats := e.stats()

	snap := Snapshot{
		Gold:           e.state.Gold,
		LifetimeEarned: e.state.LifetimeEarned,
		PassiveRate:    stats.PassiveRate,
		ClickPower:     stats.ClickPower,
		Clicks:         e.state.Clicks,
		UnlockedCount:  e.state.UnlockedCount(),
		TotalOwned:     stats.UpgradesOwned,
		Selected:       e.state.Selected,
		ActiveTab:      e.state.ActiveTab,
	}

	snap.Passive = e.upgradeRows(economy.Passive)
	snap.ClickUpgrades = e.upgradeRows(economy.Click)

	snap.Achievements = make([]AchievementRow, 0, len(achievements.All))
	for _, a := range achievements.All {
		snap.Achievements = append(snap.Achievements, AchievementRow{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Unlocked:    e.state.Unlocked[a.ID],
			Progress:    a.Value(stats),
			Target:      a.Target,
		})
	}

	return snap
}

func (e *Engine) upgradeRows(cat economy.Category) []UpgradeRow {
	defs := e.catalog.ByCategory(cat)
	rows := make([]UpgradeRow, 0, len(defs))
	for _, u := range defs {
		cost := u.CostAt(e.state.Owned[u.ID])
		rows = append(rows, UpgradeRow{
			ID:          u.ID,
			Name:        u.Name,
			Description: u.Description,
			Effect:      u.Effect,
			Owned:       e.state.Owned[u.ID],
			NextCost:    cost,
			Affordable:  e.state.Gold >= cost,
		})
	}
	return rows
}
