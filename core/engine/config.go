package engine

import (
	"go.uber.org/zap"

	"margin-suggest/core/catalog"
	"margin-suggest/internal/config"
)

// Version is the release version reported by the CLI and the service
var Version = "0.1.0"

// NewFromConfig builds an engine from the engine section of cfg:
// catalog override, currency, seed, fixed time and batch workers.
func NewFromConfig(cfg *config.Config, logger *zap.Logger) (*Engine, error) {
	opts := []Option{
		WithLogger(logger),
		WithDefaultCurrency(cfg.Engine.DefaultCurrency),
	}
	if cfg.Engine.BatchWorkers > 0 {
		opts = append(opts, WithBatchWorkers(cfg.Engine.BatchWorkers))
	}

	if cfg.Engine.CatalogPath != "" {
		c, err := catalog.LoadFile(cfg.Engine.CatalogPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithCatalog(c))
	}

	if cfg.Engine.Seed != 0 {
		opts = append(opts, WithSeed(cfg.Engine.Seed))
	}

	t, ok, err := cfg.FixedTimeValue()
	if err != nil {
		return nil, err
	}
	if ok {
		opts = append(opts, WithFixedTime(t))
	}

	return New(opts...)
}
