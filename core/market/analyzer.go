// Package market simulates the competitive context of a product.
// There is no live competitor feed: the band is derived from the product's own
// price and the sample size is a random draw.
package market

import (
	"time"

	"github.com/shopspring/decimal"

	"margin-suggest/core/catalog"
	"margin-suggest/core/determinism"
	"margin-suggest/core/pricing/primitives"
	"margin-suggest/core/types"
)

const (
	defaultReferencePrice = 20

	competitorLowFactor  = 0.85
	competitorHighFactor = 1.35

	minSampleSize = 5
	maxSampleSize = 24

	highPriceThreshold = 50
	lowPriceThreshold  = 20
	highPriceFactor    = 1.2
	lowPriceFactor     = 0.8
)

var demandBySaturation = map[types.Saturation]float64{
	types.SaturationLow:    0.8,
	types.SaturationMedium: 0.6,
	types.SaturationHigh:   0.4,
}

// Analyzer derives a MarketSnapshot
type Analyzer struct {
	catalog *catalog.Catalog
	clock   determinism.Clock
}

// NewAnalyzer creates an analyzer reading category tables from c
func NewAnalyzer(c *catalog.Catalog, clock determinism.Clock) *Analyzer {
	if clock == nil {
		clock = determinism.SystemClock{}
	}
	return &Analyzer{catalog: c, clock: clock}
}

// Analyze builds the snapshot for p in category key, drawing the sample size from rng.
func (a *Analyzer) Analyze(p types.Product, key types.CategoryKey, rng determinism.RandomSource) types.MarketSnapshot {
	ref, ok := p.ReferencePrice()
	if !ok {
		ref = decimal.NewFromInt(defaultReferencePrice)
	}
	if ref.IsNegative() {
		ref = decimal.Zero
	}

	low := primitives.Cents(ref.Mul(primitives.Factor(competitorLowFactor)))
	high := primitives.Cents(ref.Mul(primitives.Factor(competitorHighFactor)))
	avg := primitives.Cents(low.Add(high).Div(decimal.NewFromInt(2)))

	entry, ok := a.catalog.Category(key)
	if !ok {
		entry, _ = a.catalog.Category(types.CategoryGeneral)
	}
	saturation := entry.Saturation
	if saturation == "" {
		saturation = types.SaturationMedium
	}

	return types.MarketSnapshot{
		CompetitorPrices: types.CompetitorPrices{
			Low:        low,
			High:       high,
			Average:    avg,
			SampleSize: minSampleSize + rng.IntN(maxSampleSize-minSampleSize+1),
		},
		Saturation:          saturation,
		DemandScore:         demandBySaturation[saturation],
		Seasonality:         Season(a.clock.Now().Month()),
		PriceElasticity:     elasticity(entry.Elasticity, ref),
		RecommendedPosition: position(saturation),
	}
}

// Season maps a calendar month to demand seasonality: November through February
// is high season, June through August is low.
func Season(m time.Month) types.Seasonality {
	switch {
	case m >= time.November || m <= time.February:
		return types.SeasonalityHigh
	case m >= time.June && m <= time.August:
		return types.SeasonalityLow
	default:
		return types.SeasonalityNormal
	}
}

func elasticity(base float64, ref decimal.Decimal) float64 {
	if base <= 0 {
		base = 1
	}
	factor := 1.0
	switch {
	case ref.GreaterThan(decimal.NewFromInt(highPriceThreshold)):
		factor = highPriceFactor
	case ref.LessThan(decimal.NewFromInt(lowPriceThreshold)):
		factor = lowPriceFactor
	}
	return primitives.Float(primitives.Factor(base).Mul(primitives.Factor(factor)), 1)
}

func position(s types.Saturation) types.Positioning {
	switch s {
	case types.SaturationHigh:
		return types.PositioningCompetitive
	case types.SaturationLow:
		return types.PositioningFlexible
	default:
		return types.PositioningBalanced
	}
}
