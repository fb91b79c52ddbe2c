package engine

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"margin-suggest/core/catalog"
	"margin-suggest/core/determinism"
	"margin-suggest/core/types"
	"margin-suggest/internal/config"
	apperrors "margin-suggest/internal/errors"
)

var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	base := []Option{WithFixedTime(fixedNow), WithSeed(7)}
	e, err := New(append(base, opts...)...)
	require.NoError(t, err)
	return e
}

func summerDress() types.Product {
	return types.Product{
		Name:         "Summer Dress",
		CostPrice:    types.Amount(10),
		ShippingCost: types.Amount(2),
	}
}

func TestGetSuggestionsFashionItem(t *testing.T) {
	s := newTestEngine(t).GetSuggestions(summerDress(), types.Options{})

	assert.Equal(t, types.CategoryFashion, s.Category.Key)
	assert.Equal(t, "14.30", s.Costs.TotalCost.StringFixed(2))
	assert.Equal(t, types.CurrencyUSD, s.Costs.Currency)

	// competitor band derives from the cost when no price is known
	assert.Equal(t, "8.50", s.Market.CompetitorPrices.Low.StringFixed(2))
	assert.Equal(t, "13.50", s.Market.CompetitorPrices.High.StringFixed(2))
	assert.Equal(t, "11.00", s.Market.CompetitorPrices.Average.StringFixed(2))
	assert.Equal(t, types.SeasonalityNormal, s.Market.Seasonality)

	require.Len(t, s.Strategies, 5)
	prices := map[types.StrategyKey]string{}
	for _, r := range s.Strategies {
		prices[r.Strategy] = r.SuggestedPrice.StringFixed(2)
		assert.Zero(t, r.Score, "strategies are reported unscored")
	}
	assert.Equal(t, map[types.StrategyKey]string{
		types.StrategyAggressive:  "34.45",
		types.StrategyBalanced:    "21.76",
		types.StrategyCompetitive: "17.33",
		types.StrategyPremium:     "44.60",
		types.StrategyPenetration: "13.88",
	}, prices)

	// aggressive and premium tie at 76; declaration order decides
	rec := s.Recommendation
	assert.Equal(t, types.StrategyAggressive, rec.Strategy)
	assert.Equal(t, 76.0, rec.Score)
	require.Len(t, rec.Alternatives, 2)
	assert.Equal(t, types.StrategyPremium, rec.Alternatives[0].Strategy)
	assert.Equal(t, types.StrategyBalanced, rec.Alternatives[1].Strategy)
	assert.Len(t, rec.Reasoning, 3)

	assert.Equal(t, "34.45", s.Profitability.SellingPrice.StringFixed(2))
	assert.Equal(t, "20.15", s.Profitability.ProfitPerUnit.StringFixed(2))
	require.Len(t, s.PriceEndingOptions, 4)
	assert.Equal(t, "34.99", s.PriceEndingOptions[0].Formatted)
	assert.Equal(t, "34.00", s.PriceEndingOptions[1].Formatted)
	require.Len(t, s.PricingTiers, 5)
	assert.Equal(t, "28.60", s.PricingTiers[3].Price.StringFixed(2))

	var kinds []types.WarningType
	for _, w := range s.Warnings {
		kinds = append(kinds, w.Type)
	}
	assert.Equal(t, []types.WarningType{types.WarningOverpriced, types.WarningHighCompetition}, kinds)
	assert.Equal(t, fixedNow, s.Timestamp)
	assert.Len(t, s.InputHash, 64)
}

func TestGetSuggestionsMinimalProduct(t *testing.T) {
	s := newTestEngine(t).GetSuggestions(types.Product{}, types.Options{})

	assert.True(t, s.Costs.ProductCost.IsZero())
	assert.True(t, s.Costs.TotalCost.IsZero())
	assert.Equal(t, types.CategoryGeneral, s.Category.Key)
	for _, r := range s.Strategies {
		assert.Equal(t, 100.0, r.Margin, r.Strategy)
		assert.Equal(t, types.ViabilityExcellent, r.Viability, r.Strategy)
		assert.Equal(t, int64(0), r.ROI, r.Strategy)
	}

	var quality []types.WarningType
	for _, w := range s.DataQuality {
		quality = append(quality, w.Type)
	}
	assert.Contains(t, quality, types.WarningZeroCost)
	assert.Contains(t, quality, types.WarningMissingPrice)
	assert.Contains(t, quality, types.WarningMissingName)
}

// With no cost field, price stands in as the product cost, so {price: 20} is
// priced on a 24.60 basis rather than as a free product.
func TestGetSuggestionsPriceOnlyProduct(t *testing.T) {
	s := newTestEngine(t).GetSuggestions(types.Product{Price: types.Amount(20)}, types.Options{})

	assert.Equal(t, "20.00", s.Costs.ProductCost.StringFixed(2))
	assert.Equal(t, "24.60", s.Costs.TotalCost.StringFixed(2))
	for _, r := range s.Strategies {
		assert.Less(t, r.Margin, 100.0, r.Strategy)
		assert.True(t, r.SuggestedPrice.IsPositive(), r.Strategy)
	}

	var quality []types.WarningType
	for _, w := range s.DataQuality {
		quality = append(quality, w.Type)
	}
	assert.NotContains(t, quality, types.WarningZeroCost)
	assert.NotContains(t, quality, types.WarningMissingPrice)
	assert.Contains(t, quality, types.WarningMissingName)
}

func TestGetSuggestionsNegativeInputNeverFails(t *testing.T) {
	s := newTestEngine(t).GetSuggestions(types.Product{
		Name:      "Broken feed item",
		CostPrice: types.Amount(-5),
		Price:     types.Amount(-1),
	}, types.Options{})

	require.NotNil(t, s)
	assert.True(t, s.Costs.TotalCost.IsZero())
	assert.Equal(t, types.WarningNegativeCost, s.DataQuality[0].Type)
}

func TestLowMarginRecommendationWarnsOnce(t *testing.T) {
	c := catalog.Default()
	c.Strategies = []types.StrategyDefinition{{
		Key:             "thin",
		Name:            "Thin",
		TargetMargin:    types.Band{Min: 5, Max: 10},
		PriceMultiplier: types.Band{Min: 1.0, Max: 1.1},
	}}
	s := newTestEngine(t, WithCatalog(c)).GetSuggestions(summerDress(), types.Options{})

	require.Less(t, s.Recommendation.Margin, 20.0)
	count := 0
	for _, w := range s.Warnings {
		if w.Type == types.WarningLowMargin {
			count++
			assert.Equal(t, types.SeverityHigh, w.Severity)
		}
	}
	assert.Equal(t, 1, count)
}

func TestGetSuggestionsIsIdempotent(t *testing.T) {
	products := []types.Product{
		summerDress(),
		{Name: "Wireless Earbuds", Price: types.Amount(59.9), SupplierPrice: types.Amount(12.4)},
		{},
	}
	for _, p := range products {
		first, err := json.Marshal(newTestEngine(t).GetSuggestions(p, types.Options{PreferVolume: true}))
		require.NoError(t, err)
		e := newTestEngine(t)
		e.GetSuggestions(summerDress(), types.Options{})
		second, err := json.Marshal(e.GetSuggestions(p, types.Options{PreferVolume: true}))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(second))
	}
}

func TestSharedRandomSourceIsReproducible(t *testing.T) {
	run := func() []int {
		e, err := New(WithFixedTime(fixedNow), WithRandom(determinism.NewSeededSource(42)))
		require.NoError(t, err)
		var sizes []int
		for i := 0; i < 5; i++ {
			sizes = append(sizes, e.GetSuggestions(summerDress(), types.Options{}).Market.CompetitorPrices.SampleSize)
		}
		return sizes
	}
	assert.Equal(t, run(), run())
}

func TestPreferencesChangeRecommendation(t *testing.T) {
	e := newTestEngine(t)
	volume := e.GetSuggestions(summerDress(), types.Options{PreferVolume: true})
	// balanced gets +10 only with the volume preference: 56.58 -> 66.58, still below 76
	assert.Equal(t, types.StrategyAggressive, volume.Recommendation.Strategy)

	high := e.GetSuggestions(summerDress(), types.Options{PreferHighMargin: true})
	assert.Equal(t, 86.0, high.Recommendation.Score)
}

func TestGetStrategiesAndCategories(t *testing.T) {
	e := newTestEngine(t)

	strategies := e.GetStrategies()
	require.Len(t, strategies, 5)
	assert.Equal(t, types.StrategyAggressive, strategies[0].Key)
	strategies[0].Name = "mutated"
	assert.Equal(t, "Aggressive", e.GetStrategies()[0].Name)

	categories := e.Categories()
	require.Len(t, categories, 9)
	assert.Equal(t, types.CategoryGeneral, categories[len(categories)-1].Key)
}

func TestNewRejectsInvalidCatalog(t *testing.T) {
	c := catalog.Default()
	c.Strategies = nil
	_, err := New(WithCatalog(c))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.TypeCatalog))
}

func TestDefaultCurrencyOption(t *testing.T) {
	e := newTestEngine(t, WithDefaultCurrency(types.CurrencyEUR))
	assert.Equal(t, types.CurrencyEUR, e.GetSuggestions(summerDress(), types.Options{}).Costs.Currency)

	p := summerDress()
	p.Currency = types.CurrencyGBP
	assert.Equal(t, types.CurrencyGBP, e.GetSuggestions(p, types.Options{}).Costs.Currency)
}

func TestSuggestBatchKeepsOrder(t *testing.T) {
	e := newTestEngine(t, WithBatchWorkers(3))
	products := make([]types.Product, 0, 20)
	for i := 0; i < 20; i++ {
		products = append(products, types.Product{
			Name:      "Yoga mat",
			CostPrice: types.Amount(float64(i + 1)),
		})
	}

	results, stats, err := e.SuggestBatchWithStats(context.Background(), products, types.Options{})
	require.NoError(t, err)
	require.Len(t, results, len(products))
	assert.Equal(t, 3, stats.Workers)
	for i, r := range results {
		require.NotNil(t, r)
		want := e.GetSuggestions(products[i], types.Options{})
		assert.Equal(t, want.InputHash, r.InputHash)
		assert.True(t, want.Recommendation.SuggestedPrice.Equal(r.Recommendation.SuggestedPrice))
	}
}

func TestSuggestBatchCancelled(t *testing.T) {
	e := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := e.SuggestBatch(ctx, []types.Product{summerDress(), summerDress()}, types.Options{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, 2)
	for _, r := range results {
		assert.Nil(t, r)
	}
}

func TestSuggestBatchEmpty(t *testing.T) {
	results, err := newTestEngine(t).SuggestBatch(context.Background(), nil, types.Options{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Engine.Seed = 99
	cfg.Engine.FixedTime = "2024-07-01T00:00:00Z"
	cfg.Engine.DefaultCurrency = types.CurrencyGBP
	cfg.Engine.BatchWorkers = 2

	e, err := NewFromConfig(cfg, nil)
	require.NoError(t, err)
	s := e.GetSuggestions(summerDress(), types.Options{})
	assert.Equal(t, types.SeasonalityLow, s.Market.Seasonality)
	assert.Equal(t, types.CurrencyGBP, s.Costs.Currency)
	assert.Equal(t, 2, e.workers)

	cfg.Engine.FixedTime = "yesterday"
	_, err = NewFromConfig(cfg, nil)
	assert.True(t, apperrors.IsType(err, apperrors.TypeConfig))

	cfg.Engine.FixedTime = ""
	cfg.Engine.CatalogPath = "catalog.toml"
	_, err = NewFromConfig(cfg, nil)
	assert.Error(t, err)
}
