// Package engine is the public entry point of margin-suggest.
// The CLI and the HTTP service are thin wrappers around an Engine.
package engine

import (
	"encoding/binary"
	"errors"

	"go.uber.org/zap"

	"margin-suggest/core/catalog"
	"margin-suggest/core/category"
	"margin-suggest/core/cost"
	"margin-suggest/core/determinism"
	"margin-suggest/core/market"
	"margin-suggest/core/projection"
	"margin-suggest/core/strategy"
	"margin-suggest/core/types"
	"margin-suggest/core/warnings"
	apperrors "margin-suggest/internal/errors"
)

// Engine computes pricing suggestions. It holds no per-call state and is
// safe for concurrent use once built.
type Engine struct {
	catalog    *catalog.Catalog
	costs      *cost.Analyzer
	classifier *category.Classifier
	market     *market.Analyzer

	clock  determinism.Clock
	random determinism.RandomSource

	// seeded derives a fresh source per call from seed and the input hash
	seeded bool
	seed   uint64

	currency types.Currency
	workers  int
	logger   *zap.Logger
}

// New builds an engine. Without options it uses the built-in catalog, the
// system clock and process-wide randomness.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		catalog:  catalog.Default(),
		clock:    determinism.SystemClock{},
		random:   determinism.NewSystemSource(),
		currency: types.CurrencyUSD,
		workers:  DefaultBatchWorkers,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.catalog == nil {
		return nil, apperrors.Config("engine catalog is nil", nil)
	}
	if errs := e.catalog.Validate(nil); len(errs) > 0 {
		return nil, apperrors.Catalog("engine catalog is invalid", errors.Join(errs...)).
			WithContext("problems", len(errs))
	}
	if e.workers < 1 {
		e.workers = 1
	}

	e.costs = cost.NewAnalyzer(e.catalog.Surcharges, e.currency)
	e.classifier = category.NewClassifier(e.catalog)
	e.market = market.NewAnalyzer(e.catalog, e.clock)
	return e, nil
}

// GetSuggestions prices product under every strategy and assembles the full
// suggestion. It never fails: missing or invalid amounts default to zero and
// are reported in DataQuality instead.
func (e *Engine) GetSuggestions(product types.Product, opts types.Options) *types.Suggestions {
	hash, err := determinism.HashJSON(product, opts)
	if err != nil {
		e.logger.Warn("hash input", zap.Error(err))
	}

	costs := e.costs.Analyze(product)
	key, keyword := e.classifier.DetectWithKeyword(product)
	profile := e.catalog.Profile(key)
	snapshot := e.market.Analyze(product, key, e.randomFor(hash))

	results := strategy.PriceAll(e.catalog.Strategies, costs, snapshot, profile)
	rec := strategy.Select(results, opts)

	s := &types.Suggestions{
		Product:            product,
		Costs:              costs,
		Market:             snapshot,
		Category:           profile,
		Strategies:         results,
		Recommendation:     rec,
		PricingTiers:       projection.Tiers(costs, e.catalog.Tiers),
		Profitability:      projection.Profitability(rec.SuggestedPrice, costs, e.catalog.ProfitTargets),
		PriceEndingOptions: projection.PriceEndings(rec.SuggestedPrice, e.catalog.Endings),
		Warnings:           warnings.Generate(rec, snapshot),
		DataQuality:        warnings.Diagnose(product),
		InputHash:          hash.Hex(),
		Timestamp:          e.clock.Now(),
	}

	e.logger.Debug("suggestion computed",
		zap.String("product", product.Name),
		zap.String("category", string(key)),
		zap.String("keyword", keyword),
		zap.String("total_cost", costs.TotalCost.StringFixed(2)),
		zap.String("strategy", string(rec.Strategy)),
		zap.String("price", rec.SuggestedPrice.StringFixed(2)),
		zap.Int("warnings", len(s.Warnings)),
		zap.Int("data_quality", len(s.DataQuality)),
	)
	return s
}

// GetStrategies returns the strategy definitions in catalog order.
func (e *Engine) GetStrategies() []types.StrategyDefinition {
	return append([]types.StrategyDefinition(nil), e.catalog.Strategies...)
}

// Categories returns the category benchmarks in catalog order.
func (e *Engine) Categories() []types.CategoryProfile {
	return e.catalog.Profiles()
}

// Catalog returns a copy of the tables the engine prices with.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog.Clone()
}

func (e *Engine) randomFor(hash determinism.ContentHash) determinism.RandomSource {
	if !e.seeded {
		return e.random
	}
	return determinism.NewSeededSource(e.seed ^ binary.BigEndian.Uint64(hash[:8]))
}
