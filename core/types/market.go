package types

import "github.com/shopspring/decimal"

// CategoryKey names a commerce category
type CategoryKey string

const (
	CategoryElectronics CategoryKey = "electronics"
	CategoryFashion     CategoryKey = "fashion"
	CategoryHome        CategoryKey = "home"
	CategoryBeauty      CategoryKey = "beauty"
	CategoryToys        CategoryKey = "toys"
	CategorySports      CategoryKey = "sports"
	CategoryPet         CategoryKey = "pet"
	CategoryAutomotive  CategoryKey = "automotive"
	CategoryGeneral     CategoryKey = "general"
)

// CategoryProfile holds the margin benchmarks of a category, in percent.
type CategoryProfile struct {
	Key             CategoryKey `json:"key"`
	TypicalMargin   float64     `json:"typicalMargin"`
	PremiumMargin   float64     `json:"premiumMargin"`
	MinViableMargin float64     `json:"minViableMargin"`
}

// Saturation is the market-crowding level
type Saturation string

const (
	SaturationLow    Saturation = "low"
	SaturationMedium Saturation = "medium"
	SaturationHigh   Saturation = "high"
)

// Seasonality is the calendar-derived demand season
type Seasonality string

const (
	SeasonalityLow    Seasonality = "low"
	SeasonalityNormal Seasonality = "normal"
	SeasonalityHigh   Seasonality = "high"
)

// Positioning is the recommended stance against competitors
type Positioning string

const (
	PositioningCompetitive Positioning = "competitive"
	PositioningFlexible    Positioning = "flexible"
	PositioningBalanced    Positioning = "balanced"
)

// CompetitorPrices is the simulated competitor price band
type CompetitorPrices struct {
	Low        decimal.Decimal `json:"low"`
	High       decimal.Decimal `json:"high"`
	Average    decimal.Decimal `json:"average"`
	SampleSize int             `json:"sampleSize"`
}

// HasAverage reports whether a usable competitor average exists.
func (c CompetitorPrices) HasAverage() bool {
	return c.Average.IsPositive()
}

// MarketSnapshot is the derived market context for a product
type MarketSnapshot struct {
	CompetitorPrices    CompetitorPrices `json:"competitorPrices"`
	Saturation          Saturation       `json:"saturation"`
	DemandScore         float64          `json:"demandScore"`
	Seasonality         Seasonality      `json:"seasonality"`
	PriceElasticity     float64          `json:"priceElasticity"`
	RecommendedPosition Positioning      `json:"recommendedPosition"`
}
