// Package cost derives the fully-loaded unit cost of a product.
package cost

import (
	"github.com/shopspring/decimal"

	"margin-suggest/core/catalog"
	"margin-suggest/core/pricing/primitives"
	"margin-suggest/core/types"
)

// Analyzer turns raw product cost fields into a CostBreakdown
type Analyzer struct {
	surcharges      catalog.Surcharges
	defaultCurrency types.Currency
}

// NewAnalyzer creates an analyzer with the given surcharge rates
func NewAnalyzer(surcharges catalog.Surcharges, defaultCurrency types.Currency) *Analyzer {
	if defaultCurrency == "" {
		defaultCurrency = types.CurrencyUSD
	}
	return &Analyzer{
		surcharges:      surcharges,
		defaultCurrency: defaultCurrency,
	}
}

// Analyze never fails: absent or negative amounts count as zero.
// Surcharges apply to the product cost only, never to shipping. Every component
// is rounded to cents on its own and TotalCost is the sum of the rounded values.
func (a *Analyzer) Analyze(p types.Product) types.CostBreakdown {
	base, _ := p.BaseCost()
	shipping, _ := p.ShippingAmount()
	base = nonNegative(base)
	shipping = nonNegative(shipping)

	productCost := primitives.Cents(base)
	shippingCost := primitives.Cents(shipping)
	processing := a.fee(base, a.surcharges.Processing)
	platform := a.fee(base, a.surcharges.Platform)
	marketing := a.fee(base, a.surcharges.Marketing)
	returns := a.fee(base, a.surcharges.Returns)

	total := productCost.
		Add(shippingCost).
		Add(processing).
		Add(platform).
		Add(marketing).
		Add(returns)

	currency := p.Currency
	if currency == "" {
		currency = a.defaultCurrency
	}

	return types.CostBreakdown{
		ProductCost:         productCost,
		ShippingCost:        shippingCost,
		ProcessingFee:       processing,
		PlatformFee:         platform,
		MarketingAllocation: marketing,
		ReturnAllowance:     returns,
		TotalCost:           primitives.Cents(total),
		Currency:            currency,
	}
}

func (a *Analyzer) fee(base decimal.Decimal, percent float64) decimal.Decimal {
	return primitives.Cents(base.Mul(primitives.Pct(percent)))
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
