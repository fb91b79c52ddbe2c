package primitives

import "github.com/shopspring/decimal"

// PriceForMargin returns the price at which cost leaves marginPercent of the price as profit:
// cost / (1 - margin/100). Callers guarantee marginPercent < 100.
func PriceForMargin(cost decimal.Decimal, marginPercent float64) decimal.Decimal {
	return cost.Div(decimal.NewFromInt(1).Sub(Pct(marginPercent)))
}

// MarginPercent is (price - cost) / price * 100, rounded to one decimal.
// A zero price over a zero cost keeps the whole (empty) price as margin: 100.
func MarginPercent(price, cost decimal.Decimal) float64 {
	if !price.IsPositive() {
		if cost.IsZero() {
			return 100
		}
		return 0
	}
	return Float(price.Sub(cost).Div(price).Mul(hundred), 1)
}

// ROI is (price - cost) / cost * 100, rounded to an integer. Zero cost has no ROI.
func ROI(price, cost decimal.Decimal) int64 {
	if !cost.IsPositive() {
		return 0
	}
	return Int(price.Sub(cost).Div(cost).Mul(hundred))
}

// MarginOfMultiplier is the margin earned when selling at m times cost: (m-1)/m*100.
func MarginOfMultiplier(m float64) float64 {
	if m <= 0 {
		return 0
	}
	f := decimal.NewFromFloat(m)
	return Float(f.Sub(decimal.NewFromInt(1)).Div(f).Mul(hundred), 1)
}
