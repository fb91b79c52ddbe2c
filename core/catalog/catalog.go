// Package catalog - Business tables behind every pricing decision
// Category benchmarks, keyword lists, strategy bands, surcharges, tiers,
// profit targets and price endings. Algorithms read these, they never embed them.
package catalog

import (
	"margin-suggest/core/types"
)

// Surcharges are per-unit fees expressed as a percent of product cost
type Surcharges struct {
	Processing float64 `json:"processing"`
	Platform   float64 `json:"platform"`
	Marketing  float64 `json:"marketing"`
	Returns    float64 `json:"returns"`
}

// CategoryEntry is a category profile plus what detects it and how its market behaves
type CategoryEntry struct {
	types.CategoryProfile
	Keywords   []string         `json:"keywords,omitempty"`
	Saturation types.Saturation `json:"saturation"`
	Elasticity float64          `json:"elasticity"`
}

// TierDefinition is a fixed multiple of total cost
type TierDefinition struct {
	Name        string  `json:"name"`
	Multiplier  float64 `json:"multiplier"`
	MarginLabel string  `json:"marginLabel"`
	Description string  `json:"description"`
}

// EndingDefinition is a cents ending applied to the whole-unit part of a price
type EndingDefinition struct {
	Style string `json:"style"`
	Label string `json:"label"`
	Cents int64  `json:"cents"`
}

// Catalog is the full set of business tables
type Catalog struct {
	Surcharges    Surcharges                 `json:"surcharges"`
	Categories    []CategoryEntry            `json:"categories"`
	Strategies    []types.StrategyDefinition `json:"strategies"`
	Tiers         []TierDefinition           `json:"tiers"`
	ProfitTargets []float64                  `json:"profitTargets"`
	Endings       []EndingDefinition         `json:"endings"`
}

// Category returns the entry for key
func (c *Catalog) Category(key types.CategoryKey) (CategoryEntry, bool) {
	for _, entry := range c.Categories {
		if entry.Key == key {
			return entry, true
		}
	}
	return CategoryEntry{}, false
}

// Profile returns the margin profile for key, falling back to general.
func (c *Catalog) Profile(key types.CategoryKey) types.CategoryProfile {
	if entry, ok := c.Category(key); ok {
		return entry.CategoryProfile
	}
	if entry, ok := c.Category(types.CategoryGeneral); ok {
		return entry.CategoryProfile
	}
	return types.CategoryProfile{Key: types.CategoryGeneral}
}

// Profiles returns every category profile in declaration order
func (c *Catalog) Profiles() []types.CategoryProfile {
	out := make([]types.CategoryProfile, 0, len(c.Categories))
	for _, entry := range c.Categories {
		out = append(out, entry.CategoryProfile)
	}
	return out
}

// Strategy returns the definition for key
func (c *Catalog) Strategy(key types.StrategyKey) (types.StrategyDefinition, bool) {
	for _, def := range c.Strategies {
		if def.Key == key {
			return def, true
		}
	}
	return types.StrategyDefinition{}, false
}

// Clone returns a deep copy so callers can tweak tables without sharing slices.
func (c *Catalog) Clone() *Catalog {
	out := *c
	out.Categories = make([]CategoryEntry, len(c.Categories))
	for i, entry := range c.Categories {
		entry.Keywords = append([]string(nil), entry.Keywords...)
		out.Categories[i] = entry
	}
	out.Strategies = append([]types.StrategyDefinition(nil), c.Strategies...)
	out.Tiers = append([]TierDefinition(nil), c.Tiers...)
	out.ProfitTargets = append([]float64(nil), c.ProfitTargets...)
	out.Endings = append([]EndingDefinition(nil), c.Endings...)
	return &out
}
