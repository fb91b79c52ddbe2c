package warnings

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"margin-suggest/core/types"
	apperrors "margin-suggest/internal/errors"
)

type amountField struct {
	name  string
	value decimal.NullDecimal
}

func amountFields(p types.Product) []amountField {
	return []amountField{
		{"costPrice", p.CostPrice},
		{"supplierPrice", p.SupplierPrice},
		{"price", p.Price},
		{"shippingCost", p.ShippingCost},
		{"shipping", p.Shipping},
	}
}

// Diagnose reports data-quality problems in p without stopping the computation.
func Diagnose(p types.Product) []types.Warning {
	out := []types.Warning{}

	var negative []string
	for _, f := range amountFields(p) {
		if f.value.Valid && f.value.Decimal.IsNegative() {
			negative = append(negative, f.name)
		}
	}
	if len(negative) > 0 {
		out = append(out, types.Warning{
			Type:     types.WarningNegativeCost,
			Severity: types.SeverityHigh,
			Message:  fmt.Sprintf("Negative amounts treated as zero: %s", strings.Join(negative, ", ")),
		})
	}

	if base, ok := p.BaseCost(); !ok || !base.IsPositive() {
		out = append(out, types.Warning{
			Type:     types.WarningZeroCost,
			Severity: types.SeverityHigh,
			Message:  "No positive product cost found, every strategy prices a free product",
		})
	}

	if !p.Price.Valid {
		out = append(out, types.Warning{
			Type:     types.WarningMissingPrice,
			Severity: types.SeverityLow,
			Message:  "No current selling price, competitor prices are simulated from the cost",
		})
	}

	if strings.TrimSpace(p.Name) == "" {
		out = append(out, types.Warning{
			Type:     types.WarningMissingName,
			Severity: types.SeverityLow,
			Message:  "No product name, category detection relies on category and description only",
		})
	}

	return out
}

// Validate is the strict counterpart of Diagnose for callers that prefer rejecting
// bad input: negative amounts and a missing or zero cost are input errors.
func Validate(p types.Product) error {
	for _, f := range amountFields(p) {
		if f.value.Valid && f.value.Decimal.IsNegative() {
			return apperrors.Input(f.name + " must not be negative").WithContext("field", f.name)
		}
	}
	if base, ok := p.BaseCost(); !ok || !base.IsPositive() {
		return apperrors.Input("one of costPrice, supplierPrice or price must be positive")
	}
	return nil
}
