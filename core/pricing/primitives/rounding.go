// Package primitives - Centralized pricing math
// Every stage rounds and derives margins through these helpers so that
// results agree to the cent across the pipeline.
package primitives

import "github.com/shopspring/decimal"

var (
	half    = decimal.NewFromFloat(0.5)
	hundred = decimal.NewFromInt(100)
)

// Round rounds to places decimals with halves going toward positive infinity,
// the behavior of JavaScript's Math.round(x * 10^places) / 10^places on exact values.
func Round(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Shift(places).Add(half).Floor().Shift(-places)
}

// Cents rounds a monetary amount to 2 decimals.
func Cents(d decimal.Decimal) decimal.Decimal {
	return Round(d, 2)
}

// Float rounds to places decimals and returns a float64.
func Float(d decimal.Decimal, places int32) float64 {
	return Round(d, places).InexactFloat64()
}

// Int rounds to the nearest integer.
func Int(d decimal.Decimal) int64 {
	return Round(d, 0).IntPart()
}

// Pct turns a percentage like 40 into the factor 0.40.
func Pct(percent float64) decimal.Decimal {
	return decimal.NewFromFloat(percent).Div(hundred)
}

// Factor wraps a float constant.
func Factor(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
