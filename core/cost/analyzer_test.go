package cost

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"margin-suggest/core/catalog"
	"margin-suggest/core/types"
)

func newAnalyzer() *Analyzer {
	return NewAnalyzer(catalog.Default().Surcharges, types.CurrencyUSD)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// TestAnalyzeFashionItem checks the worked example: 10 + 2 + 0.3 + 0.5 + 1 + 0.5
func TestAnalyzeFashionItem(t *testing.T) {
	costs := newAnalyzer().Analyze(types.Product{
		Name:         "Summer Dress",
		CostPrice:    types.Amount(10),
		ShippingCost: types.Amount(2),
	})

	assert.True(t, costs.ProductCost.Equal(dec("10")))
	assert.True(t, costs.ShippingCost.Equal(dec("2")))
	assert.True(t, costs.ProcessingFee.Equal(dec("0.3")))
	assert.True(t, costs.PlatformFee.Equal(dec("0.5")))
	assert.True(t, costs.MarketingAllocation.Equal(dec("1")))
	assert.True(t, costs.ReturnAllowance.Equal(dec("0.5")))
	assert.Equal(t, "14.30", costs.TotalCost.StringFixed(2))
	assert.Equal(t, types.CurrencyUSD, costs.Currency)
}

func TestAnalyzeFieldPrecedence(t *testing.T) {
	tests := []struct {
		name         string
		product      types.Product
		wantBase     string
		wantShipping string
	}{
		{
			name:     "costPrice wins over supplierPrice and price",
			product:  types.Product{CostPrice: types.Amount(5), SupplierPrice: types.Amount(7), Price: types.Amount(9)},
			wantBase: "5",
		},
		{
			name:     "supplierPrice used when costPrice absent",
			product:  types.Product{SupplierPrice: types.Amount(7), Price: types.Amount(9)},
			wantBase: "7",
		},
		{
			name:     "price is the last resort",
			product:  types.Product{Price: types.Amount(9)},
			wantBase: "9",
		},
		{
			name:     "explicit zero costPrice is not skipped",
			product:  types.Product{CostPrice: types.Amount(0), Price: types.Amount(9)},
			wantBase: "0",
		},
		{
			name:         "shippingCost wins over shipping",
			product:      types.Product{ShippingCost: types.Amount(3), Shipping: types.Amount(4)},
			wantBase:     "0",
			wantShipping: "3",
		},
		{
			name:         "shipping alias",
			product:      types.Product{Shipping: types.Amount(4)},
			wantBase:     "0",
			wantShipping: "4",
		},
		{
			name:     "negative cost clamps to zero",
			product:  types.Product{CostPrice: types.Amount(-12)},
			wantBase: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			costs := newAnalyzer().Analyze(tt.product)
			assert.True(t, costs.ProductCost.Equal(dec(tt.wantBase)), "product cost %s", costs.ProductCost)
			wantShipping := tt.wantShipping
			if wantShipping == "" {
				wantShipping = "0"
			}
			assert.True(t, costs.ShippingCost.Equal(dec(wantShipping)), "shipping %s", costs.ShippingCost)
		})
	}
}

// TestTotalIsSumOfRoundedComponents covers cost totals for awkward amounts
// where rounding each fee first matters.
func TestTotalIsSumOfRoundedComponents(t *testing.T) {
	for _, raw := range []float64{0, 0.01, 0.17, 1.05, 3.33, 7.77, 12.345, 19.99, 99.95, 1234.56} {
		costs := newAnalyzer().Analyze(types.Product{
			CostPrice:    types.Amount(raw),
			ShippingCost: types.Amount(1.15),
		})

		sum := decimal.Zero
		for _, c := range costs.Components() {
			require.True(t, c.Equal(c.Round(2)), "component %s not rounded to cents", c)
			sum = sum.Add(c)
		}
		assert.True(t, costs.TotalCost.Equal(sum), "cost %v: total %s != sum %s", raw, costs.TotalCost, sum)
	}
}

func TestPerComponentRoundingDrift(t *testing.T) {
	// 0.17 * 3% = 0.0051 -> 0.01, 5% = 0.0085 -> 0.01, 10% = 0.017 -> 0.02, 5% -> 0.01
	costs := newAnalyzer().Analyze(types.Product{CostPrice: types.Amount(0.17)})
	assert.Equal(t, "0.22", costs.TotalCost.StringFixed(2))

	// Rounding the unrounded sum once would give 0.17 * 1.23 = 0.2091 -> 0.21
	assert.Equal(t, "0.21", dec("0.17").Mul(dec("1.23")).Round(2).StringFixed(2))
}

func TestAnalyzeEmptyProduct(t *testing.T) {
	costs := newAnalyzer().Analyze(types.Product{Currency: types.CurrencyEUR})
	assert.True(t, costs.TotalCost.IsZero())
	assert.Equal(t, types.CurrencyEUR, costs.Currency)
}

func TestSurchargesFromCatalog(t *testing.T) {
	a := NewAnalyzer(catalog.Surcharges{Processing: 10}, "")
	costs := a.Analyze(types.Product{CostPrice: types.Amount(50)})
	assert.Equal(t, "55.00", costs.TotalCost.StringFixed(2))
	assert.Equal(t, types.CurrencyUSD, costs.Currency)
}
