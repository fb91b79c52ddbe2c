// Package projection derives the secondary views of a suggestion: fixed pricing
// tiers, volume needed to hit profit goals and psychological price endings.
package projection

import (
	"margin-suggest/core/catalog"
	"margin-suggest/core/pricing/primitives"
	"margin-suggest/core/types"
)

// Tiers prices each tier definition as a multiple of total cost. Margin is derived
// from the multiplier; MarginLabel is the catalog's fixed display text.
func Tiers(costs types.CostBreakdown, defs []catalog.TierDefinition) []types.PricingTier {
	out := make([]types.PricingTier, 0, len(defs))
	for _, def := range defs {
		out = append(out, types.PricingTier{
			Name:        def.Name,
			Multiplier:  def.Multiplier,
			Price:       primitives.Cents(costs.TotalCost.Mul(primitives.Factor(def.Multiplier))),
			Margin:      primitives.MarginOfMultiplier(def.Multiplier),
			MarginLabel: def.MarginLabel,
			Description: def.Description,
		})
	}
	return out
}
