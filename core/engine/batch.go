package engine

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"margin-suggest/core/types"
)

// BatchStats describes one SuggestBatch run
type BatchStats struct {
	Products       int           `json:"products"`
	Workers        int           `json:"workers"`
	TotalDuration  time.Duration `json:"totalDuration"`
	AvgPerProduct  time.Duration `json:"avgPerProduct"`
	MaxConcurrency int           `json:"maxConcurrency"`
}

// SuggestBatch computes suggestions for many products on a bounded worker pool.
// Results keep input order. If ctx is cancelled before every product is priced
// the context error is returned along with the partial results; unpriced
// entries are nil.
func (e *Engine) SuggestBatch(ctx context.Context, products []types.Product, opts types.Options) ([]*types.Suggestions, error) {
	results, _, err := e.SuggestBatchWithStats(ctx, products, opts)
	return results, err
}

// SuggestBatchWithStats is SuggestBatch plus timing information.
func (e *Engine) SuggestBatchWithStats(ctx context.Context, products []types.Product, opts types.Options) ([]*types.Suggestions, BatchStats, error) {
	start := time.Now()
	results := make([]*types.Suggestions, len(products))
	stats := BatchStats{Products: len(products)}
	if len(products) == 0 {
		return results, stats, ctx.Err()
	}

	workers := e.workers
	if len(products) < workers {
		workers = len(products)
	}
	stats.Workers = workers
	stats.MaxConcurrency = workers

	work := make(chan int, len(products))
	for i := range products {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				select {
				case <-ctx.Done():
					return
				default:
					results[i] = e.GetSuggestions(products[i], opts)
				}
			}
		}()
	}
	wg.Wait()

	stats.TotalDuration = time.Since(start)
	stats.AvgPerProduct = stats.TotalDuration / time.Duration(len(products))

	if err := ctx.Err(); err != nil && countMissing(results) > 0 {
		e.logger.Warn("batch interrupted",
			zap.Int("products", len(products)),
			zap.Int("unpriced", countMissing(results)),
			zap.Error(err),
		)
		return results, stats, err
	}
	e.logger.Debug("batch complete",
		zap.Int("products", len(products)),
		zap.Int("workers", workers),
		zap.Duration("duration", stats.TotalDuration),
	)
	return results, stats, nil
}

func countMissing(results []*types.Suggestions) int {
	n := 0
	for _, r := range results {
		if r == nil {
			n++
		}
	}
	return n
}
