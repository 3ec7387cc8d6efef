package game

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/termgold/goldmine/internal/config"
)

var t0 = time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	catalog, err := config.DefaultBalance().Catalog()
	if err != nil {
		t.Fatalf("building default catalog: %v", err)
	}
	return NewEngine(catalog, DefaultRules(), t0)
}

func TestTickPassiveAccrual(t *testing.T) {
	e := newTestEngine(t)
	e.State().Owned["shovel"] = 1 // 0.5 gold/sec

	e.Tick(1.0)

	if e.State().Gold != 0.5 {
		t.Errorf("Gold = %v, expected 0.5", e.State().Gold)
	}
	if e.State().LifetimeEarned != 0.5 {
		t.Errorf("LifetimeEarned = %v, expected 0.5", e.State().LifetimeEarned)
	}
}

func TestTickWithNoProductionIsNoOp(t *testing.T) {
	e := newTestEngine(t)

	e.Tick(10.0)

	if e.State().Gold != 0 {
		t.Errorf("Gold = %v, expected 0 with no passive upgrades", e.State().Gold)
	}
}

func TestTickSplitIsAdditive(t *testing.T) {
	whole := newTestEngine(t)
	whole.State().Owned["pickaxe"] = 3
	whole.Tick(1.0)

	split := newTestEngine(t)
	split.State().Owned["pickaxe"] = 3
	split.Tick(0.5)
	split.Tick(0.5)

	if math.Abs(whole.State().Gold-split.State().Gold) > 1e-9 {
		t.Errorf("one 1.0s tick yields %v, two 0.5s ticks yield %v",
			whole.State().Gold, split.State().Gold)
	}
}

func TestTickClampsElapsed(t *testing.T) {
	e := newTestEngine(t)
	e.State().Owned["shovel"] = 1 // 0.5 gold/sec, MaxTickStep is 1.0s

	// A stalled process reporting a huge gap credits at most one step.
	e.Tick(3600.0)
	if e.State().Gold != 0.5 {
		t.Errorf("Gold = %v after clamped tick, expected 0.5", e.State().Gold)
	}

	// Negative elapsed time credits nothing.
	e.Tick(-5.0)
	if e.State().Gold != 0.5 {
		t.Errorf("Gold = %v after negative tick, expected unchanged 0.5", e.State().Gold)
	}
}

func TestClickAddsClickPower(t *testing.T) {
	e := newTestEngine(t)

	if !e.Click(t0) {
		t.Fatal("first click should be accepted")
	}

	if e.State().Gold != 1.0 {
		t.Errorf("Gold = %v, expected 1.0 (base click power)", e.State().Gold)
	}
	if e.State().LifetimeEarned != 1.0 {
		t.Errorf("LifetimeEarned = %v, expected 1.0", e.State().LifetimeEarned)
	}
	if e.State().Clicks != 1 {
		t.Errorf("Clicks = %d, expected 1", e.State().Clicks)
	}
}

func TestClickCooldownBoundary(t *testing.T) {
	e := newTestEngine(t)

	if !e.Click(t0) {
		t.Fatal("first click should be accepted")
	}

	// Inside the 500ms window: rejected, no state change.
	if e.Click(t0.Add(499 * time.Millisecond)) {
		t.Error("click at 499ms should be rejected")
	}
	if e.State().Clicks != 1 || e.State().Gold != 1.0 {
		t.Errorf("rejected click changed state: clicks=%d gold=%v", e.State().Clicks, e.State().Gold)
	}

	// Exactly at the cooldown: accepted.
	if !e.Click(t0.Add(500 * time.Millisecond)) {
		t.Error("click at exactly 500ms should be accepted")
	}
	if e.State().Clicks != 2 {
		t.Errorf("Clicks = %d, expected 2", e.State().Clicks)
	}
}

func TestClickPowerIncludesUpgrades(t *testing.T) {
	e := newTestEngine(t)
	e.State().Owned["strong_arms"] = 2 // +1 gold/click each

	if got := e.ClickPower(); got != 3.0 {
		t.Errorf("ClickPower() = %v, expected 3.0", got)
	}
}

func TestBuyInsufficientFunds(t *testing.T) {
	e := newTestEngine(t)
	e.State().Gold = 9.999 // Pickaxe costs 10

	err := e.Buy("pickaxe")
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Buy() error = %v, expected ErrInsufficientFunds", err)
	}

	// Atomicity: the failed purchase left everything untouched.
	if e.State().Gold != 9.999 {
		t.Errorf("Gold = %v, expected unchanged 9.999", e.State().Gold)
	}
	if e.State().Owned["pickaxe"] != 0 {
		t.Errorf("Owned[pickaxe] = %d, expected 0", e.State().Owned["pickaxe"])
	}
}

func TestBuyExactBalanceSucceeds(t *testing.T) {
	e := newTestEngine(t)
	e.State().Gold = 10.0

	if err := e.Buy("pickaxe"); err != nil {
		t.Fatalf("Buy() with exact balance failed: %v", err)
	}

	if e.State().Gold != 0 {
		t.Errorf("Gold = %v, expected 0", e.State().Gold)
	}
	if e.State().Owned["pickaxe"] != 1 {
		t.Errorf("Owned[pickaxe] = %d, expected 1", e.State().Owned["pickaxe"])
	}
}

func TestBuyEscalatesGeometrically(t *testing.T) {
	e := newTestEngine(t)
	e.State().Gold = 1000.0

	// Three pickaxes at multiplier 1.15: 10, 11.5, 13.225.
	for i := 0; i < 3; i++ {
		if err := e.Buy("pickaxe"); err != nil {
			t.Fatalf("purchase %d failed: %v", i, err)
		}
	}

	spent := 1000.0 - e.State().Gold
	if math.Abs(spent-34.725) > 1e-9 {
		t.Errorf("total spent = %v, expected 34.725", spent)
	}
	if e.State().Owned["pickaxe"] != 3 {
		t.Errorf("Owned[pickaxe] = %d, expected 3", e.State().Owned["pickaxe"])
	}
}

func TestBuyDoesNotIncreaseLifetime(t *testing.T) {
	e := newTestEngine(t)
	e.State().Gold = 100.0
	e.State().LifetimeEarned = 100.0

	if err := e.Buy("pickaxe"); err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}

	if e.State().LifetimeEarned != 100.0 {
		t.Errorf("LifetimeEarned = %v, purchases must not change it", e.State().LifetimeEarned)
	}
}

func TestLifetimeNeverDecreases(t *testing.T) {
	e := newTestEngine(t)
	e.State().Owned["drill"] = 2

	prev := 0.0
	now := t0
	for i := 0; i < 50; i++ {
		switch i % 3 {
		case 0:
			e.Tick(0.25)
		case 1:
			now = now.Add(600 * time.Millisecond)
			e.Click(now)
		case 2:
			//nolint:errcheck // Failure is fine, only monotonicity matters here
			e.Buy("pickaxe")
		}

		if e.State().LifetimeEarned < prev {
			t.Fatalf("LifetimeEarned decreased at op %d: %v -> %v", i, prev, e.State().LifetimeEarned)
		}
		prev = e.State().LifetimeEarned
	}
}

func TestNavigateClampsAtEdges(t *testing.T) {
	e := newTestEngine(t)

	// Six passive upgrades: 0..5.
	for i := 0; i < 20; i++ {
		e.Navigate(1)
	}
	if e.State().Selected != 5 {
		t.Errorf("Selected = %d after navigating down past the end, expected 5", e.State().Selected)
	}

	for i := 0; i < 20; i++ {
		e.Navigate(-1)
	}
	if e.State().Selected != 0 {
		t.Errorf("Selected = %d after navigating up past the top, expected 0", e.State().Selected)
	}
}

func TestSwitchTabResetsCursor(t *testing.T) {
	e := newTestEngine(t)

	e.Navigate(1)
	e.Navigate(1)
	if e.State().Selected != 2 {
		t.Fatalf("Selected = %d, expected 2", e.State().Selected)
	}

	e.SwitchTab(TabClick)
	if e.State().ActiveTab != TabClick {
		t.Errorf("ActiveTab = %v, expected TabClick", e.State().ActiveTab)
	}
	if e.State().Selected != 0 {
		t.Errorf("Selected = %d after tab switch, expected 0", e.State().Selected)
	}

	// Switching to the current tab keeps the cursor.
	e.Navigate(1)
	e.SwitchTab(TabClick)
	if e.State().Selected != 1 {
		t.Errorf("Selected = %d after no-op tab switch, expected 1", e.State().Selected)
	}
}

func TestNavigateNeverTouchesEconomy(t *testing.T) {
	e := newTestEngine(t)
	e.State().Gold = 42.0

	e.Navigate(1)
	e.SwitchTab(TabAchievements)
	e.Navigate(1)

	if e.State().Gold != 42.0 {
		t.Errorf("Gold = %v, cursor movement must not change it", e.State().Gold)
	}
	if e.State().TotalOwned() != 0 {
		t.Errorf("TotalOwned = %d, cursor movement must not change it", e.State().TotalOwned())
	}
}

func TestBuySelectedOnAchievementsTabIsNoOp(t *testing.T) {
	e := newTestEngine(t)
	e.State().Gold = 1000.0
	e.SwitchTab(TabAchievements)

	if err := e.BuySelected(); err != nil {
		t.Errorf("BuySelected() on achievements tab = %v, expected nil", err)
	}
	if e.State().Gold != 1000.0 {
		t.Errorf("Gold = %v, expected unchanged 1000", e.State().Gold)
	}
}

func TestNextCostPanicsOnUnknownID(t *testing.T) {
	e := newTestEngine(t)

	defer func() {
		if recover() == nil {
			t.Error("NextCost with unknown id should panic")
		}
	}()
	e.NextCost("laser")
}

func TestApplyDispatch(t *testing.T) {
	e := newTestEngine(t)
	e.State().Gold = 25.0

	e.Apply(CommandClick, t0)
	if e.State().Clicks != 1 {
		t.Errorf("Apply(CommandClick): Clicks = %d, expected 1", e.State().Clicks)
	}

	e.Apply(CommandTabClick, t0)
	if e.State().ActiveTab != TabClick {
		t.Errorf("Apply(CommandTabClick): ActiveTab = %v", e.State().ActiveTab)
	}

	e.Apply(CommandBuy, t0) // Strong Arms at cost 25, balance is 26 after the click
	if e.State().Owned["strong_arms"] != 1 {
		t.Errorf("Apply(CommandBuy): Owned[strong_arms] = %d, expected 1", e.State().Owned["strong_arms"])
	}

	e.Apply(CommandDown, t0)
	if e.State().Selected != 1 {
		t.Errorf("Apply(CommandDown): Selected = %d, expected 1", e.State().Selected)
	}
}

func TestAchievementUnlockSurvivesSpending(t *testing.T) {
	e := newTestEngine(t)
	e.State().Owned["gold_factory"] = 1 // 100 gold/sec

	// One second crosses lifetime 100: first_steps unlocks.
	e.Tick(1.0)
	if !e.State().Unlocked["first_steps"] {
		t.Fatal("first_steps should unlock at lifetime 100")
	}
	if !e.State().Unlocked["passive_income"] || !e.State().Unlocked["gold_rush"] {
		t.Error("rate achievements should unlock at 100 gold/sec")
	}

	// Spending below the threshold must not revoke anything.
	if err := e.Buy("pickaxe"); err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	if e.State().Gold >= 100 {
		t.Fatalf("test setup: gold should be below 100, got %v", e.State().Gold)
	}
	if !e.State().Unlocked["first_steps"] {
		t.Error("first_steps was revoked after spending")
	}
}

func TestScenarioAccrueThenBuyExact(t *testing.T) {
	e := newTestEngine(t)
	e.State().Owned["shovel"] = 1 // 0.5 gold/sec

	// 19 seconds in: 9.5 gold, Pickaxe (cost 10) is still out of reach.
	for i := 0; i < 19; i++ {
		e.Tick(1.0)
	}
	if err := e.Buy("pickaxe"); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Buy() at 9.5 gold = %v, expected ErrInsufficientFunds", err)
	}

	// One more second reaches exactly 10: the purchase succeeds.
	e.Tick(1.0)
	if e.State().Gold != 10.0 {
		t.Fatalf("Gold = %v after 20s at 0.5/sec, expected exactly 10", e.State().Gold)
	}
	if err := e.Buy("pickaxe"); err != nil {
		t.Fatalf("Buy() at exact cost failed: %v", err)
	}
	if e.State().Gold != 0 {
		t.Errorf("Gold = %v after exact purchase, expected 0", e.State().Gold)
	}
	if e.State().Owned["pickaxe"] != 1 {
		t.Errorf("Owned[pickaxe] = %d, expected 1", e.State().Owned["pickaxe"])
	}
}

func TestSnapshotProjection(t *testing.T) {
	e := newTestEngine(t)
	e.State().Gold = 30.0
	e.State().Owned["pickaxe"] = 2

	snap := e.Snapshot()

	if snap.Gold != 30.0 {
		t.Errorf("snap.Gold = %v, expected 30", snap.Gold)
	}
	if math.Abs(snap.PassiveRate-0.2) > 1e-9 {
		t.Errorf("snap.PassiveRate = %v, expected 0.2", snap.PassiveRate)
	}
	if len(snap.Passive) != 6 || len(snap.ClickUpgrades) != 5 {
		t.Fatalf("snapshot rows = %d passive, %d click; expected 6 and 5",
			len(snap.Passive), len(snap.ClickUpgrades))
	}

	pickaxe := snap.Passive[0]
	if pickaxe.ID != "pickaxe" || pickaxe.Owned != 2 {
		t.Errorf("pickaxe row = %+v", pickaxe)
	}
	if math.Abs(pickaxe.NextCost-13.225) > 1e-9 {
		t.Errorf("pickaxe NextCost = %v, expected 13.225", pickaxe.NextCost)
	}
	if !pickaxe.Affordable {
		t.Error("pickaxe should be affordable at 30 gold")
	}

	// Strong Arms costs 25, affordable; Steel Tools costs 100, not.
	if !snap.ClickUpgrades[0].Affordable {
		t.Error("strong_arms should be affordable at 30 gold")
	}
	if snap.ClickUpgrades[1].Affordable {
		t.Error("steel_tools should not be affordable at 30 gold")
	}

	if len(snap.Achievements) != 8 {
		t.Errorf("achievement rows = %d, expected 8", len(snap.Achievements))
	}
}
