// Package achievements defines the fixed milestone table and its evaluator.
// Every predicate is monotone in its tracked quantity, so re-evaluation is
// idempotent and an unlocked achievement can never regress.
package achievements

// Stats is the read-only view of the game the predicates are evaluated over.
// All fields only grow during a run (gold spent on purchases never reduces
// LifetimeEarned).
type Stats struct {
	LifetimeEarned float64 // Total gold ever earned, unaffected by spending
	PassiveRate    float64 // Gold per second from passive upgrades
	ClickPower     float64 // Gold per manual click
	Clicks         uint64  // Accepted manual clicks
	UpgradesOwned  int     // Total owned count across all upgrades
}

// Achievement is a single milestone definition.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Target      float64
	// Value extracts the tracked quantity from the stats view.
	Value func(Stats) float64
}

// Unlocked reports whether the milestone is met for the given stats.
func (a Achievement) Unlocked(s Stats) bool {
	return a.Value(s) >= a.Target
}

// All is the complete milestone table, in display order. The set is fixed:
// there is no dynamic registration.
var All = []Achievement{
	{
		ID:          "first_steps",
		Name:        "First Steps",
		Description: "Earn 100 total gold",
		Target:      100,
		Value:       func(s Stats) float64 { return s.LifetimeEarned },
	},
	{
		ID:          "getting_rich",
		Name:        "Getting Rich",
		Description: "Earn 10,000 total gold",
		Target:      10_000,
		Value:       func(s Stats) float64 { return s.LifetimeEarned },
	},
	{
		ID:          "millionaire",
		Name:        "Millionaire",
		Description: "Earn 1,000,000 total gold",
		Target:      1_000_000,
		Value:       func(s Stats) float64 { return s.LifetimeEarned },
	},
	{
		ID:          "passive_income",
		Name:        "Passive Income",
		Description: "Reach 10 gold per second",
		Target:      10,
		Value:       func(s Stats) float64 { return s.PassiveRate },
	},
	{
		ID:          "gold_rush",
		Name:        "Gold Rush",
		Description: "Reach 100 gold per second",
		Target:      100,
		Value:       func(s Stats) float64 { return s.PassiveRate },
	},
	{
		ID:          "click_master",
		Name:        "Click Master",
		Description: "Click 1,000 times",
		Target:      1000,
		Value:       func(s Stats) float64 { return float64(s.Clicks) },
	},
	{
		ID:          "power_clicker",
		Name:        "Power Clicker",
		Description: "Reach 50 gold per click",
		Target:      50,
		Value:       func(s Stats) float64 { return s.ClickPower },
	},
	{
		ID:          "upgrade_collector",
		Name:        "Upgrade Collector",
		Description: "Purchase 50 upgrades",
		Target:      50,
		Value:       func(s Stats) float64 { return float64(s.UpgradesOwned) },
	},
}

// Evaluate returns the ids of achievements whose predicate is satisfied by
// the stats and that are not already in unlocked. It never mutates unlocked.
func Evaluate(s Stats, unlocked map[string]bool) []string {
	var newly []string
	for _, a := range All {
		if unlocked[a.ID] {
			continue
		}
		if a.Unlocked(s) {
			newly = append(newly, a.ID)
		}
	}
	return newly
}

// ByID returns the achievement definition for the given id.
func ByID(id string) (Achievement, bool) {
	for _, a := range All {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// Count returns the number of defined achievements.
func Count() int {
	return len(All)
}
