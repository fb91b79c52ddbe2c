package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"margin-suggest/core/types"
)

func result(key types.StrategyKey, margin float64, v types.Viability, pos types.MarketPosition) types.StrategyResult {
	return types.StrategyResult{Strategy: key, Margin: margin, Viability: v, MarketPosition: pos}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		r    types.StrategyResult
		opts types.Options
		want float64
	}{
		{"weighted sum", result("a", 45, types.ViabilityGood, types.PositionPremium), types.Options{}, 73},
		{"margin capped at 50", result("a", 60, types.ViabilityExcellent, types.PositionMatch), types.Options{}, 82},
		{"unknown position counts as match", result("a", 20, types.ViabilityRisky, types.PositionUnknown), types.Options{}, 34},
		{"below market", result("a", 20, types.ViabilityRisky, types.PositionBelow), types.Options{}, 30},
		{"high margin bonus", result("a", 45, types.ViabilityGood, types.PositionPremium), types.Options{PreferHighMargin: true}, 83},
		{"high margin bonus needs > 40", result("a", 40, types.ViabilityGood, types.PositionPremium), types.Options{PreferHighMargin: true}, 70},
		{"volume bonus", result("a", 20, types.ViabilityRisky, types.PositionBelow), types.Options{PreferVolume: true}, 40},
		{"volume bonus needs < 35", result("a", 35, types.ViabilityRisky, types.PositionBelow), types.Options{PreferVolume: true}, 39},
		{"not viable", result("a", 5, types.ViabilityNotViable, types.PositionBelow), types.Options{}, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.r, tt.opts), 1e-9)
		})
	}
}

func TestBothBonusesCanApply(t *testing.T) {
	r := result("a", 45, types.ViabilityGood, types.PositionPremium)
	base := Score(r, types.Options{})
	// margin 45 only qualifies for the high margin bonus
	assert.InDelta(t, base+10, Score(r, types.Options{PreferHighMargin: true, PreferVolume: true}), 1e-9)
}

func TestSelect(t *testing.T) {
	results := []types.StrategyResult{
		result(types.StrategyAggressive, 62, types.ViabilityGood, types.PositionPremium),
		result(types.StrategyBalanced, 40, types.ViabilityAcceptable, types.PositionPremium),
		result(types.StrategyCompetitive, 30, types.ViabilityRisky, types.PositionMatch),
		result(types.StrategyPremium, 75, types.ViabilityExcellent, types.PositionPremium),
		result(types.StrategyPenetration, 18, types.ViabilityRisky, types.PositionBelow),
	}

	rec := Select(results, types.Options{})
	assert.Equal(t, types.StrategyPremium, rec.Strategy)
	require.Len(t, rec.Alternatives, 2)
	assert.Equal(t, types.StrategyAggressive, rec.Alternatives[0].Strategy)
	assert.Equal(t, types.StrategyBalanced, rec.Alternatives[1].Strategy)
	assert.Greater(t, rec.Score, rec.Alternatives[0].Score)
	assert.Len(t, rec.Reasoning, 3)

	for _, r := range results {
		assert.Zero(t, r.Score, "input must not be mutated")
	}
}

func TestSelectVolumePreference(t *testing.T) {
	results := []types.StrategyResult{
		result(types.StrategyBalanced, 36, types.ViabilityAcceptable, types.PositionMatch),
		result(types.StrategyPenetration, 34, types.ViabilityAcceptable, types.PositionMatch),
	}
	assert.Equal(t, types.StrategyBalanced, Select(results, types.Options{}).Strategy)
	assert.Equal(t, types.StrategyPenetration, Select(results, types.Options{PreferVolume: true}).Strategy)
}

func TestSelectTiesKeepDeclarationOrder(t *testing.T) {
	results := []types.StrategyResult{
		result("first", 30, types.ViabilityGood, types.PositionMatch),
		result("second", 30, types.ViabilityGood, types.PositionMatch),
	}
	rec := Select(results, types.Options{})
	assert.Equal(t, types.StrategyKey("first"), rec.Strategy)
	require.Len(t, rec.Alternatives, 1)
}

func TestSelectEmpty(t *testing.T) {
	rec := Select(nil, types.Options{})
	assert.Empty(t, rec.Strategy)
	assert.NotNil(t, rec.Alternatives)
	assert.NotNil(t, rec.Reasoning)
}

func TestReasoning(t *testing.T) {
	lines := Reasoning(result("a", 45.5, types.ViabilityExcellent, types.PositionBelow))
	assert.Equal(t, []string{
		"Strong 45.5% margin leaves room for promotions and ad spend",
		"Margin beats the premium benchmark for this category",
		"Priced below competitors to drive volume",
	}, lines)

	lines = Reasoning(result("a", -3, types.ViabilityNotViable, types.PositionUnknown))
	assert.Equal(t, "Price is below total cost, every sale loses money", lines[0])
	assert.Equal(t, "No competitor data to compare against", lines[2])
}
