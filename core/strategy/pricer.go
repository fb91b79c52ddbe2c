// Package strategy prices a product under each named strategy and picks a winner.
package strategy

import (
	"github.com/shopspring/decimal"

	"margin-suggest/core/pricing/primitives"
	"margin-suggest/core/types"
)

// Blend weights between margin-target and multiplier-target pricing.
var (
	marginWeight     = primitives.Factor(0.6)
	multiplierWeight = primitives.Factor(0.4)
)

// Position thresholds against the competitor average.
var (
	belowMarket   = primitives.Factor(0.9)
	premiumMarket = primitives.Factor(1.1)
)

// BasePrice is the blended price before any market adjustment:
// 0.6 * totalCost/(1 - midMargin/100) + 0.4 * productCost * midMultiplier.
func BasePrice(def types.StrategyDefinition, costs types.CostBreakdown) decimal.Decimal {
	marginBased := primitives.PriceForMargin(costs.TotalCost, def.TargetMargin.Mid())
	multiplierBased := costs.ProductCost.Mul(primitives.Factor(def.PriceMultiplier.Mid()))
	return marginBased.Mul(marginWeight).Add(multiplierBased.Mul(multiplierWeight))
}

// MarketAdjustment is the strategy's reaction to how the base price compares
// with the competitor average. Without an average there is no adjustment.
func MarketAdjustment(key types.StrategyKey, price decimal.Decimal, market types.MarketSnapshot) float64 {
	if !market.CompetitorPrices.HasAverage() {
		return 1
	}
	ratio := price.Div(market.CompetitorPrices.Average).InexactFloat64()

	switch key {
	case types.StrategyBalanced:
		if ratio > 1.2 {
			return 0.95
		}
		if ratio < 0.8 {
			return 1.05
		}
	case types.StrategyCompetitive:
		if ratio > 1.1 {
			return 0.9
		}
	case types.StrategyPremium:
		if ratio < 1.2 {
			return 1.1
		}
	case types.StrategyPenetration:
		if ratio > 1 {
			return 0.85
		}
	}
	// aggressive and custom strategies ignore the market
	return 1
}

// Price computes the StrategyResult for one strategy.
func Price(def types.StrategyDefinition, costs types.CostBreakdown, market types.MarketSnapshot, profile types.CategoryProfile) types.StrategyResult {
	base := BasePrice(def, costs)
	adjustment := MarketAdjustment(def.Key, base, market)
	price := primitives.Cents(base.Mul(primitives.Factor(adjustment)))

	margin := primitives.MarginPercent(price, costs.TotalCost)

	return types.StrategyResult{
		Strategy:       def.Key,
		Name:           def.Name,
		Icon:           def.Icon,
		SuggestedPrice: price,
		// The range maps the top of the margin band to Min and the bottom to Max.
		PriceRange: types.PriceRange{
			Min: primitives.Cents(primitives.PriceForMargin(costs.TotalCost, def.TargetMargin.Max)),
			Max: primitives.Cents(primitives.PriceForMargin(costs.TotalCost, def.TargetMargin.Min)),
		},
		Profit:         primitives.Cents(price.Sub(costs.TotalCost)),
		Margin:         margin,
		ROI:            primitives.ROI(price, costs.TotalCost),
		MarketPosition: Position(price, market),
		Viability:      Viability(margin, profile),
	}
}

// Position places price against the competitor average.
func Position(price decimal.Decimal, market types.MarketSnapshot) types.MarketPosition {
	if !market.CompetitorPrices.HasAverage() {
		return types.PositionUnknown
	}
	avg := market.CompetitorPrices.Average
	switch {
	case price.LessThan(avg.Mul(belowMarket)):
		return types.PositionBelow
	case price.GreaterThan(avg.Mul(premiumMarket)):
		return types.PositionPremium
	default:
		return types.PositionMatch
	}
}

// Viability buckets a margin against the category benchmarks.
func Viability(margin float64, profile types.CategoryProfile) types.Viability {
	switch {
	case margin >= profile.PremiumMargin:
		return types.ViabilityExcellent
	case margin >= profile.TypicalMargin:
		return types.ViabilityGood
	case margin >= profile.MinViableMargin:
		return types.ViabilityAcceptable
	case margin >= 10:
		return types.ViabilityRisky
	default:
		return types.ViabilityNotViable
	}
}

// PriceAll prices every definition, in order.
func PriceAll(defs []types.StrategyDefinition, costs types.CostBreakdown, market types.MarketSnapshot, profile types.CategoryProfile) []types.StrategyResult {
	out := make([]types.StrategyResult, 0, len(defs))
	for _, def := range defs {
		out = append(out, Price(def, costs, market, profile))
	}
	return out
}
