package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingTier is a fixed multiple of total cost
type PricingTier struct {
	Name        string          `json:"name"`
	Multiplier  float64         `json:"multiplier"`
	Price       decimal.Decimal `json:"price"`
	Margin      float64         `json:"margin"`
	MarginLabel string          `json:"marginLabel"`
	Description string          `json:"description"`
}

// ProfitTarget is the volume needed to reach a monthly profit goal
type ProfitTarget struct {
	MonthlyProfit decimal.Decimal `json:"monthlyProfit"`
	UnitsNeeded   int64           `json:"unitsNeeded"`
	DailySales    int64           `json:"dailySales"`
	Achievable    bool            `json:"achievable"`
}

// Profitability projects per-unit and volume economics at a selling price
type Profitability struct {
	SellingPrice      decimal.Decimal `json:"sellingPrice"`
	ProfitPerUnit     decimal.Decimal `json:"profitPerUnit"`
	Margin            float64         `json:"margin"`
	Targets           []ProfitTarget  `json:"targets"`
	AnnualPotential   decimal.Decimal `json:"annualPotential"`
	AssumedDailySales int64           `json:"assumedDailySales"`
}

// PriceEnding is a psychologically anchored variant of a price
type PriceEnding struct {
	Style     string          `json:"style"`
	Label     string          `json:"label"`
	Price     decimal.Decimal `json:"price"`
	Formatted string          `json:"formatted"`
}

// WarningType identifies a risk or data-quality flag
type WarningType string

const (
	WarningLowMargin       WarningType = "low_margin"
	WarningOverpriced      WarningType = "overpriced"
	WarningHighCompetition WarningType = "high_competition"

	WarningZeroCost     WarningType = "zero_cost"
	WarningNegativeCost WarningType = "negative_cost"
	WarningMissingPrice WarningType = "missing_price"
	WarningMissingName  WarningType = "missing_name"
)

// Severity grades a warning
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Warning is a qualitative flag attached to a suggestion
type Warning struct {
	Type     WarningType `json:"type"`
	Severity Severity    `json:"severity"`
	Message  string      `json:"message"`
}

// Suggestions is the aggregate returned by the engine for one product
type Suggestions struct {
	Product            Product          `json:"product"`
	Costs              CostBreakdown    `json:"costs"`
	Market             MarketSnapshot   `json:"market"`
	Category           CategoryProfile  `json:"category"`
	Strategies         []StrategyResult `json:"strategies"`
	Recommendation     Recommendation   `json:"recommendation"`
	PricingTiers       []PricingTier    `json:"pricingTiers"`
	Profitability      Profitability    `json:"profitability"`
	PriceEndingOptions []PriceEnding    `json:"priceEndingOptions"`
	Warnings           []Warning        `json:"warnings"`
	DataQuality        []Warning        `json:"dataQuality"`
	InputHash          string           `json:"inputHash"`
	Timestamp          time.Time        `json:"timestamp"`
}
