package achievements

import "testing"

func TestThresholdBoundary(t *testing.T) {
	unlocked := make(map[string]bool)

	// Just under the threshold: nothing unlocks.
	newly := Evaluate(Stats{LifetimeEarned: 99.999}, unlocked)
	if len(newly) != 0 {
		t.Errorf("expected no unlocks below threshold, got %v", newly)
	}

	// Exactly at the threshold: first_steps unlocks.
	newly = Evaluate(Stats{LifetimeEarned: 100}, unlocked)
	if len(newly) != 1 || newly[0] != "first_steps" {
		t.Errorf("expected [first_steps] at exactly 100, got %v", newly)
	}
}

func TestEvaluateSkipsAlreadyUnlocked(t *testing.T) {
	unlocked := map[string]bool{"first_steps": true}

	newly := Evaluate(Stats{LifetimeEarned: 150}, unlocked)
	if len(newly) != 0 {
		t.Errorf("already-unlocked achievement reported again: %v", newly)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	unlocked := make(map[string]bool)
	stats := Stats{
		LifetimeEarned: 15_000,
		PassiveRate:    12,
		ClickPower:     55,
		Clicks:         1200,
		UpgradesOwned:  51,
	}

	first := Evaluate(stats, unlocked)
	for _, id := range first {
		unlocked[id] = true
	}
	if len(first) != 6 {
		t.Fatalf("expected 6 unlocks, got %d: %v", len(first), first)
	}

	second := Evaluate(stats, unlocked)
	if len(second) != 0 {
		t.Errorf("second evaluation should unlock nothing, got %v", second)
	}
}

func TestEvaluateNeverMutatesUnlockedSet(t *testing.T) {
	unlocked := make(map[string]bool)
	Evaluate(Stats{LifetimeEarned: 1_000_000}, unlocked)

	if len(unlocked) != 0 {
		t.Errorf("Evaluate mutated the unlocked set: %v", unlocked)
	}
}

func TestAllIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range All {
		if seen[a.ID] {
			t.Errorf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true

		if a.Target <= 0 {
			t.Errorf("achievement %q has non-positive target", a.ID)
		}
		if a.Value == nil {
			t.Errorf("achievement %q has no value extractor", a.ID)
		}
	}
}

func TestByID(t *testing.T) {
	a, ok := ByID("gold_rush")
	if !ok {
		t.Fatal("ByID(gold_rush) should find the achievement")
	}
	if a.Target != 100 {
		t.Errorf("gold_rush target = %v, expected 100", a.Target)
	}

	if _, ok := ByID("time_traveler"); ok {
		t.Error("ByID with unknown id should report not found")
	}
}

func TestUpgradeCollectorCountsAllCategories(t *testing.T) {
	unlocked := make(map[string]bool)

	newly := Evaluate(Stats{UpgradesOwned: 50}, unlocked)
	found := false
	for _, id := range newly {
		if id == "upgrade_collector" {
			found = true
		}
	}
	if !found {
		t.Errorf("upgrade_collector should unlock at 50 owned, got %v", newly)
	}
}
