// Package game contains the simulation core of the gold mine: the mutable
// state aggregate, the engine that advances it, and the snapshot the
// presentation layer renders from. It contains no external dependencies
// (especially no Bubble Tea) to keep the logic pure and testable.
package game

import (
	"time"
)

// Tab identifies which upgrade/achievement list the cursor lives in.
// Tabs are a presentation concern carried in state for continuity between
// frames; they never affect the economy.
type Tab int

const (
	TabPassive Tab = iota
	TabClick
	TabAchievements
)

// String returns a human-readable name for the tab.
func (t Tab) String() string {
	switch t {
	case TabPassive:
		return "Passive"
	case TabClick:
		return "Click"
	case TabAchievements:
		return "Achievements"
	default:
		return "Unknown"
	}
}

// State is the single mutable aggregate of a run. It is created once at
// start, mutated exclusively by the Engine, and discarded at process exit.
// No save files: every run starts from zero.
type State struct {
	// Gold is the spendable balance. Never negative.
	Gold float64
	// LifetimeEarned is all gold ever earned (passive + clicks). Monotone
	// non-decreasing; purchases never reduce it.
	LifetimeEarned float64
	// Clicks counts accepted manual clicks. Monotone non-decreasing.
	Clicks uint64
	// Owned maps upgrade id to owned count. Counts only increase: there is
	// no selling or refunding.
	Owned map[string]int
	// Unlocked is the set of unlocked achievement ids. Grows monotonically;
	// entries are never removed.
	Unlocked map[string]bool
	// Selected and ActiveTab are the UI cursor, carried between frames.
	Selected  int
	ActiveTab Tab
	// LastClick is the timestamp of the most recent accepted click, used to
	// enforce the click cooldown. Zero until the first accepted click.
	LastClick time.Time
	// StartedAt marks run start, used for the run-history record.
	StartedAt time.Time
}

// NewState returns a fresh run with all counters at zero.
func NewState(now time.Time) *State {
	return &State{
		Owned:     make(map[string]int),
		Unlocked:  make(map[string]bool),
		ActiveTab: TabPassive,
		StartedAt: now,
	}
}

// TotalOwned returns the total owned count across all upgrades.
func (s *State) TotalOwned() int {
	total := 0
	for _, n := range s.Owned {
		total += n
	}
	return total
}

// UnlockedCount returns the number of unlocked achievements.
func (s *State) UnlockedCount() int {
	return len(s.Unlocked)
}
