package engine

import (
	"time"

	"go.uber.org/zap"

	"margin-suggest/core/catalog"
	"margin-suggest/core/determinism"
	"margin-suggest/core/types"
)

// DefaultBatchWorkers bounds SuggestBatch concurrency when no option is given
const DefaultBatchWorkers = 4

// Option configures an Engine
type Option func(*Engine)

// WithCatalog replaces the built-in tables. The engine keeps its own copy.
func WithCatalog(c *catalog.Catalog) Option {
	return func(e *Engine) {
		if c == nil {
			e.catalog = nil
			return
		}
		e.catalog = c.Clone()
	}
}

// WithClock sets the clock used for seasonality and timestamps
func WithClock(c determinism.Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithFixedTime pins the clock to t
func WithFixedTime(t time.Time) Option {
	return WithClock(determinism.NewFixedClock(t))
}

// WithRandom shares src across every call. Output then depends on call order;
// use WithSeed for per-input reproducibility.
func WithRandom(src determinism.RandomSource) Option {
	return func(e *Engine) {
		if src != nil {
			e.random = src
			e.seeded = false
		}
	}
}

// WithSeed makes market simulation a function of seed and the input:
// identical products and options always draw the same values.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.seeded = true
		e.seed = seed
	}
}

// WithDefaultCurrency sets the currency used when a product carries none
func WithDefaultCurrency(c types.Currency) Option {
	return func(e *Engine) {
		if c != "" {
			e.currency = c
		}
	}
}

// WithBatchWorkers bounds SuggestBatch concurrency
func WithBatchWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithLogger sets the engine logger
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}
