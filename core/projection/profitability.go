package projection

import (
	"github.com/shopspring/decimal"

	"margin-suggest/core/pricing/primitives"
	"margin-suggest/core/types"
)

const (
	// AssumedDailySales drives the annual potential
	AssumedDailySales = 3

	daysPerYear  = 365
	daysPerMonth = 30
)

// Profitability projects per-unit profit at sellingPrice and the volume needed for
// each monthly profit target. Targets are unreachable when a unit earns nothing.
func Profitability(sellingPrice decimal.Decimal, costs types.CostBreakdown, targets []float64) types.Profitability {
	profit := primitives.Cents(sellingPrice.Sub(costs.TotalCost))

	out := types.Profitability{
		SellingPrice:      sellingPrice,
		ProfitPerUnit:     profit,
		Margin:            primitives.MarginPercent(sellingPrice, costs.TotalCost),
		Targets:           make([]types.ProfitTarget, 0, len(targets)),
		AnnualPotential:   primitives.Cents(profit.Mul(decimal.NewFromInt(daysPerYear * AssumedDailySales))),
		AssumedDailySales: AssumedDailySales,
	}

	for _, target := range targets {
		goal := primitives.Factor(target)
		pt := types.ProfitTarget{MonthlyProfit: goal}
		if profit.IsPositive() {
			units := goal.Div(profit).Ceil()
			pt.UnitsNeeded = units.IntPart()
			pt.DailySales = units.Div(decimal.NewFromInt(daysPerMonth)).Ceil().IntPart()
			pt.Achievable = true
		}
		out.Targets = append(out.Targets, pt)
	}
	return out
}
