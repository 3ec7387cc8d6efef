package game

import (
	"errors"
	"time"

	"github.com/termgold/goldmine/internal/achievements"
	"github.com/termgold/goldmine/internal/economy"
)

// ErrInsufficientFunds is returned by Buy when the balance cannot cover the
// upgrade's current cost. The purchase leaves the state untouched.
var ErrInsufficientFunds = errors.New("goldmine: insufficient funds")

// Rules are the engine's balance-derived tuning knobs.
type Rules struct {
	// BaseClickPower is the gold per click before any click upgrades.
	BaseClickPower float64
	// ClickCooldown is the minimum interval between accepted clicks.
	// Clicks inside the window are silently ignored, not errors.
	ClickCooldown time.Duration
	// MaxTickStep caps the elapsed seconds credited by a single Tick, so a
	// stalled process cannot grant a large catch-up windfall.
	MaxTickStep float64
}

// DefaultRules returns the stock tuning: 1 gold/click, 500ms cooldown,
// at most one second credited per tick.
func DefaultRules() Rules {
	return Rules{
		BaseClickPower: 1.0,
		ClickCooldown:  500 * time.Millisecond,
		MaxTickStep:    1.0,
	}
}

// Engine advances a State in response to elapsed time and player commands.
// It is the state's only writer; the presentation layer reads snapshots.
type Engine struct {
	catalog economy.Catalog
	rules   Rules
	state   *State
}

// NewEngine creates an engine over a fresh state.
func NewEngine(catalog economy.Catalog, rules Rules, now time.Time) *Engine {
	return &Engine{
		catalog: catalog,
		rules:   rules,
		state:   NewState(now),
	}
}

// PassiveRate returns the current gold/sec from owned passive upgrades.
func (e *Engine) PassiveRate() float64 {
	rate := 0.0
	for _, u := range e.catalog.ByCategory(economy.Passive) {
		rate += float64(e.state.Owned[u.ID]) * u.Effect
	}
	return rate
}

// ClickPower returns the current gold per accepted click: the base click
// value plus owned click upgrades.
func (e *Engine) ClickPower() float64 {
	power := e.rules.BaseClickPower
	for _, u := range e.catalog.ByCategory(economy.Click) {
		power += float64(e.state.Owned[u.ID]) * u.Effect
	}
	return power
}

// NextCost returns the price of the next copy of the given upgrade at the
// current owned count. Panics on an unknown id: every selectable row maps to
// a defined upgrade, so a miss is an invariant violation.
func (e *Engine) NextCost(id string) float64 {
	u := e.catalog.MustGet(id)
	return u.CostAt(e.state.Owned[id])
}

// Tick credits passive production for the elapsed wall-clock seconds.
// Elapsed time is clamped to [0, MaxTickStep]; callers are expected to tick
// sub-second so fractional accrual is not visibly lossy.
func (e *Engine) Tick(elapsedSeconds float64) {
	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}
	if elapsedSeconds > e.rules.MaxTickStep {
		elapsedSeconds = e.rules.MaxTickStep
	}

	earned := e.PassiveRate() * elapsedSeconds
	e.state.Gold += earned
	e.state.LifetimeEarned += earned

	e.evaluateAchievements()
}

// Click attempts a manual click at the given time. A click inside the
// cooldown window is rejected with no state change; the rejection is a
// no-op, not an error. Returns whether the click was accepted.
func (e *Engine) Click(now time.Time) bool {
	if !e.state.LastClick.IsZero() && now.Sub(e.state.LastClick) < e.rules.ClickCooldown {
		return false
	}

	power := e.ClickPower()
	e.state.Gold += power
	e.state.LifetimeEarned += power
	e.state.Clicks++
	e.state.LastClick = now

	e.evaluateAchievements()
	return true
}

// Buy purchases one copy of the given upgrade. The cost is computed from the
// pre-purchase owned count, so repeated purchases escalate geometrically.
// The purchase is atomic: on ErrInsufficientFunds nothing changes.
// An exact balance (gold == cost) succeeds.
func (e *Engine) Buy(id string) error {
	cost := e.NextCost(id)
	if e.state.Gold < cost {
		return ErrInsufficientFunds
	}

	e.state.Gold -= cost
	e.state.Owned[id]++

	e.evaluateAchievements()
	return nil
}

// BuySelected purchases the upgrade under the cursor. On the achievements
// tab there is nothing to buy and the command is a no-op.
func (e *Engine) BuySelected() error {
	rows := e.visibleUpgrades()
	if rows == nil {
		return nil
	}
	if e.state.Selected < 0 || e.state.Selected >= len(rows) {
		return nil
	}
	return e.Buy(rows[e.state.Selected].ID)
}

// Navigate moves the cursor by delta rows, clamping at list edges rather
// than wrapping. It never touches the economy.
func (e *Engine) Navigate(delta int) {
	max := e.rowCount() - 1
	if max < 0 {
		max = 0
	}
	next := e.state.Selected + delta
	if next < 0 {
		next = 0
	}
	if next > max {
		next = max
	}
	e.state.Selected = next
}

// SwitchTab changes the active tab and resets the cursor to the top.
// Switching to the current tab is a no-op.
func (e *Engine) SwitchTab(t Tab) {
	if e.state.ActiveTab == t {
		return
	}
	e.state.ActiveTab = t
	e.state.Selected = 0
}

// Apply dispatches a single player command. Failed purchases are swallowed:
// the player sees an unchanged balance, never an error.
func (e *Engine) Apply(cmd Command, now time.Time) {
	switch cmd {
	case CommandClick:
		e.Click(now)
	case CommandBuy:
		//nolint:errcheck // A rejected purchase shows as an unchanged balance
		e.BuySelected()
	case CommandUp:
		e.Navigate(-1)
	case CommandDown:
		e.Navigate(1)
	case CommandTabPassive:
		e.SwitchTab(TabPassive)
	case CommandTabClick:
		e.SwitchTab(TabClick)
	case CommandTabAchievements:
		e.SwitchTab(TabAchievements)
	}
}

// State exposes the aggregate for the engine's owner. Tests and the
// run-history recorder read it; nothing else should mutate it.
func (e *Engine) State() *State {
	return e.state
}

// visibleUpgrades returns the upgrade rows of the active tab, or nil on the
// achievements tab.
func (e *Engine) visibleUpgrades() []economy.Upgrade {
	switch e.state.ActiveTab {
	case TabPassive:
		return e.catalog.ByCategory(economy.Passive)
	case TabClick:
		return e.catalog.ByCategory(economy.Click)
	default:
		return nil
	}
}

// rowCount returns the number of selectable rows on the active tab.
func (e *Engine) rowCount() int {
	if e.state.ActiveTab == TabAchievements {
		return achievements.Count()
	}
	return len(e.visibleUpgrades())
}

// stats builds the read-only view the achievement predicates run over.
func (e *Engine) stats() achievements.Stats {
	return achievements.Stats{
		LifetimeEarned: e.state.LifetimeEarned,
		PassiveRate:    e.PassiveRate(),
		ClickPower:     e.ClickPower(),
		Clicks:         e.state.Clicks,
		UpgradesOwned:  e.state.TotalOwned(),
	}
}

// evaluateAchievements unlocks any newly satisfied milestones. Runs after
// every tick, accepted click, and successful purchase; all predicates are
// monotone, so unlocks are permanent.
func (e *Engine) evaluateAchievements() {
	for _, id := range achievements.Evaluate(e.stats(), e.state.Unlocked) {
		e.state.Unlocked[id] = true
	}
}
