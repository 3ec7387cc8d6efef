// Package economy provides the upgrade catalog and cost model for the
// gold mine. It contains no external dependencies (especially no Bubble Tea)
// to keep the simulation pure and testable.
package economy

import (
	"errors"
	"fmt"
	"math"
)

// Category classifies what an upgrade improves.
type Category int

const (
	// Passive upgrades increase automatic gold production per second.
	Passive Category = iota
	// Click upgrades increase gold gained per manual click.
	Click
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case Passive:
		return "passive"
	case Click:
		return "click"
	default:
		return "unknown"
	}
}

// ParseCategory converts a string (e.g. from YAML) to a Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "passive":
		return Passive, nil
	case "click":
		return Click, nil
	default:
		return Passive, fmt.Errorf("economy: unknown category %q", s)
	}
}

// Upgrade is an immutable purchasable definition. Effect is gold/sec for
// Passive upgrades and gold/click for Click upgrades.
type Upgrade struct {
	ID          string
	Name        string
	Description string
	Category    Category
	BaseCost    float64
	CostMult    float64
	Effect      float64
}

// CostAt returns the price of this upgrade when `owned` copies are already
// held: base_cost * multiplier^owned. Costs escalate geometrically, so the
// pre-purchase owned count must be used.
func (u Upgrade) CostAt(owned int) float64 {
	return u.BaseCost * math.Pow(u.CostMult, float64(owned))
}

// Catalog is the fixed, ordered set of upgrade definitions. Order is
// significant: it determines list rows in the UI.
type Catalog struct {
	upgrades []Upgrade
	byID     map[string]int
}

// NewCatalog validates the definitions and builds a catalog.
func NewCatalog(upgrades []Upgrade) (Catalog, error) {
	if len(upgrades) == 0 {
		return Catalog{}, errors.New("economy: catalog is empty")
	}

	byID := make(map[string]int, len(upgrades))
	for i, u := range upgrades {
		if u.ID == "" {
			return Catalog{}, fmt.Errorf("economy: upgrade %d has empty id", i)
		}
		if _, dup := byID[u.ID]; dup {
			return Catalog{}, fmt.Errorf("economy: duplicate upgrade id %q", u.ID)
		}
		if u.BaseCost <= 0 {
			return Catalog{}, fmt.Errorf("economy: upgrade %q: base cost must be positive, got %g", u.ID, u.BaseCost)
		}
		if u.CostMult <= 1 {
			return Catalog{}, fmt.Errorf("economy: upgrade %q: cost multiplier must be > 1, got %g", u.ID, u.CostMult)
		}
		if u.Effect <= 0 {
			return Catalog{}, fmt.Errorf("economy: upgrade %q: effect must be positive, got %g", u.ID, u.Effect)
		}
		byID[u.ID] = i
	}

	return Catalog{upgrades: upgrades, byID: byID}, nil
}

// MustCatalog is NewCatalog that panics on invalid definitions.
// Use only with compiled-in defaults.
func MustCatalog(upgrades []Upgrade) Catalog {
	c, err := NewCatalog(upgrades)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the definition for the given id.
func (c Catalog) Get(id string) (Upgrade, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Upgrade{}, false
	}
	return c.upgrades[i], true
}

// MustGet returns the definition for the given id, panicking if it does not
// exist. Every selectable row maps to a defined upgrade, so a miss here is a
// programming error, not a runtime condition.
func (c Catalog) MustGet(id string) Upgrade {
	u, ok := c.Get(id)
	if !ok {
		panic(fmt.Sprintf("economy: unknown upgrade id %q", id))
	}
	return u
}

// All returns every upgrade in catalog order.
func (c Catalog) All() []Upgrade {
	out := make([]Upgrade, len(c.upgrades))
	copy(out, c.upgrades)
	return out
}

// ByCategory returns the upgrades of one category, preserving catalog order.
func (c Catalog) ByCategory(cat Category) []Upgrade {
	var out []Upgrade
	for _, u := range c.upgrades {
		if u.Category == cat {
			out = append(out, u)
		}
	}
	return out
}

// Len returns the number of upgrade definitions.
func (c Catalog) Len() int {
	return len(c.upgrades)
}
