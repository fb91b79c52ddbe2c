package strategy

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"margin-suggest/core/determinism"
	"margin-suggest/core/pricing/primitives"
	"margin-suggest/core/types"
)

const (
	viabilityWeight = 0.4
	marginWeightPts = 0.6
	positionWeight  = 0.2
	marginCap       = 50

	preferenceBonus     = 10
	highMarginThreshold = 40
	volumeThreshold     = 35

	alternativeCount = 2
)

var viabilityPoints = map[types.Viability]float64{
	types.ViabilityExcellent:  100,
	types.ViabilityGood:       75,
	types.ViabilityAcceptable: 50,
	types.ViabilityRisky:      25,
	types.ViabilityNotViable:  0,
}

var positionPoints = map[types.MarketPosition]float64{
	types.PositionBelow:   40,
	types.PositionMatch:   60,
	types.PositionPremium: 80,
}

// Score rates a strategy result:
// 0.4*viability + 0.6*min(margin, 50) + 0.2*position + preference bonuses.
func Score(r types.StrategyResult, opts types.Options) float64 {
	pos, ok := positionPoints[r.MarketPosition]
	if !ok {
		pos = 60
	}
	score := viabilityWeight*viabilityPoints[r.Viability] +
		marginWeightPts*math.Min(r.Margin, marginCap) +
		positionWeight*pos

	if opts.PreferHighMargin && r.Margin > highMarginThreshold {
		score += preferenceBonus
	}
	if opts.PreferVolume && r.Margin < volumeThreshold {
		score += preferenceBonus
	}
	return primitives.Float(decimal.NewFromFloat(score), 2)
}

// Select ranks results by score, highest first, keeping input order on ties.
// The winner becomes the recommendation and the next two its alternatives.
// The input slice is left untouched.
func Select(results []types.StrategyResult, opts types.Options) types.Recommendation {
	if len(results) == 0 {
		return types.Recommendation{Alternatives: []types.StrategyResult{}, Reasoning: []string{}}
	}

	ranked := make([]types.StrategyResult, len(results))
	copy(ranked, results)
	for i := range ranked {
		ranked[i].Score = Score(ranked[i], opts)
	}
	determinism.SortSlice(ranked, func(a, b types.StrategyResult) bool {
		return a.Score > b.Score
	})

	end := 1 + alternativeCount
	if end > len(ranked) {
		end = len(ranked)
	}
	best := ranked[0]
	return types.Recommendation{
		StrategyResult: best,
		Alternatives:   append([]types.StrategyResult{}, ranked[1:end]...),
		Reasoning:      Reasoning(best),
	}
}

// Reasoning explains a recommendation with one line per concern: margin, viability, market position.
func Reasoning(r types.StrategyResult) []string {
	var lines []string

	switch {
	case r.Margin >= 40:
		lines = append(lines, fmt.Sprintf("Strong %.1f%% margin leaves room for promotions and ad spend", r.Margin))
	case r.Margin >= 25:
		lines = append(lines, fmt.Sprintf("Healthy %.1f%% margin covers fees and returns", r.Margin))
	case r.Margin >= 0:
		lines = append(lines, fmt.Sprintf("Thin %.1f%% margin, keep advertising costs under control", r.Margin))
	default:
		lines = append(lines, "Price is below total cost, every sale loses money")
	}

	switch r.Viability {
	case types.ViabilityExcellent:
		lines = append(lines, "Margin beats the premium benchmark for this category")
	case types.ViabilityGood:
		lines = append(lines, "Margin is above the typical level for this category")
	case types.ViabilityAcceptable:
		lines = append(lines, "Margin stays within the viable range for this category")
	case types.ViabilityRisky:
		lines = append(lines, "Margin is under the viable minimum for this category")
	default:
		lines = append(lines, "Margin is too low to sustain this product")
	}

	switch r.MarketPosition {
	case types.PositionBelow:
		lines = append(lines, "Priced below competitors to drive volume")
	case types.PositionMatch:
		lines = append(lines, "Priced in line with the competitor average")
	case types.PositionPremium:
		lines = append(lines, "Priced above competitors, highlight quality and branding")
	default:
		lines = append(lines, "No competitor data to compare against")
	}

	return lines
}
