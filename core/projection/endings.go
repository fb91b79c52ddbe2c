package projection

import (
	"github.com/shopspring/decimal"

	"margin-suggest/core/catalog"
	"margin-suggest/core/types"
)

// PriceEndings applies each ending's cents to the whole-unit part of base.
func PriceEndings(base decimal.Decimal, defs []catalog.EndingDefinition) []types.PriceEnding {
	whole := base.Floor()
	if whole.IsNegative() {
		whole = decimal.Zero
	}
	out := make([]types.PriceEnding, 0, len(defs))
	for _, def := range defs {
		price := whole.Add(decimal.New(def.Cents, -2))
		out = append(out, types.PriceEnding{
			Style:     def.Style,
			Label:     def.Label,
			Price:     price,
			Formatted: price.StringFixed(2),
		})
	}
	return out
}
