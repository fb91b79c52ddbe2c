package types

import "github.com/shopspring/decimal"

// StrategyKey names a pricing strategy
type StrategyKey string

const (
	StrategyAggressive  StrategyKey = "aggressive"
	StrategyBalanced    StrategyKey = "balanced"
	StrategyCompetitive StrategyKey = "competitive"
	StrategyPremium     StrategyKey = "premium"
	StrategyPenetration StrategyKey = "penetration"
)

// Band is an inclusive numeric range
type Band struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Mid returns the midpoint of the band
func (b Band) Mid() float64 {
	return (b.Min + b.Max) / 2
}

// StrategyDefinition is the static description of a strategy
type StrategyDefinition struct {
	Key             StrategyKey `json:"key"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Icon            string      `json:"icon"`
	TargetMargin    Band        `json:"targetMargin"`
	PriceMultiplier Band        `json:"priceMultiplier"`
}

// MarketPosition places a price against the competitor average
type MarketPosition string

const (
	PositionBelow   MarketPosition = "below"
	PositionMatch   MarketPosition = "match"
	PositionPremium MarketPosition = "premium"
	PositionUnknown MarketPosition = "unknown"
)

// Viability buckets a margin against category benchmarks
type Viability string

const (
	ViabilityExcellent  Viability = "excellent"
	ViabilityGood       Viability = "good"
	ViabilityAcceptable Viability = "acceptable"
	ViabilityRisky      Viability = "risky"
	ViabilityNotViable  Viability = "not_viable"
)

// PriceRange is the band implied by a strategy's margin targets
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// StrategyResult is one strategy priced for one product
type StrategyResult struct {
	Strategy       StrategyKey     `json:"strategyKey"`
	Name           string          `json:"name"`
	Icon           string          `json:"icon"`
	SuggestedPrice decimal.Decimal `json:"suggestedPrice"`
	PriceRange     PriceRange      `json:"priceRange"`
	Profit         decimal.Decimal `json:"profit"`
	Margin         float64         `json:"margin"`
	ROI            int64           `json:"roi"`
	MarketPosition MarketPosition  `json:"marketPosition"`
	Viability      Viability       `json:"viability"`
	Score          float64         `json:"score,omitempty"`
}

// Recommendation is the winning strategy plus its runners-up
type Recommendation struct {
	StrategyResult
	Alternatives []StrategyResult `json:"alternatives"`
	Reasoning    []string         `json:"reasoning"`
}
