package types

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// cents writes a monetary amount as a JSON string with exactly two decimals.
// Decoding goes through decimal.Decimal, which reads the same strings back.
type cents decimal.Decimal

func (c cents) MarshalJSON() ([]byte, error) {
	return []byte(`"` + decimal.Decimal(c).StringFixed(2) + `"`), nil
}

// MarshalJSON writes amounts with a fixed two-decimal scale
func (c CostBreakdown) MarshalJSON() ([]byte, error) {
	type plain CostBreakdown
	return json.Marshal(struct {
		plain
		ProductCost         cents `json:"productCost"`
		ShippingCost        cents `json:"shippingCost"`
		ProcessingFee       cents `json:"processingFee"`
		PlatformFee         cents `json:"platformFee"`
		MarketingAllocation cents `json:"marketingAllocation"`
		ReturnAllowance     cents `json:"returnAllowance"`
		TotalCost           cents `json:"totalCost"`
	}{
		plain:               plain(c),
		ProductCost:         cents(c.ProductCost),
		ShippingCost:        cents(c.ShippingCost),
		ProcessingFee:       cents(c.ProcessingFee),
		PlatformFee:         cents(c.PlatformFee),
		MarketingAllocation: cents(c.MarketingAllocation),
		ReturnAllowance:     cents(c.ReturnAllowance),
		TotalCost:           cents(c.TotalCost),
	})
}

// MarshalJSON writes amounts with a fixed two-decimal scale
func (c CompetitorPrices) MarshalJSON() ([]byte, error) {
	type plain CompetitorPrices
	return json.Marshal(struct {
		plain
		Low     cents `json:"low"`
		High    cents `json:"high"`
		Average cents `json:"average"`
	}{plain(c), cents(c.Low), cents(c.High), cents(c.Average)})
}

// MarshalJSON writes amounts with a fixed two-decimal scale
func (r PriceRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Min cents `json:"min"`
		Max cents `json:"max"`
	}{cents(r.Min), cents(r.Max)})
}

// MarshalJSON writes amounts with a fixed two-decimal scale
func (r StrategyResult) MarshalJSON() ([]byte, error) {
	type plain StrategyResult
	return json.Marshal(struct {
		plain
		SuggestedPrice cents `json:"suggestedPrice"`
		Profit         cents `json:"profit"`
	}{plain(r), cents(r.SuggestedPrice), cents(r.Profit)})
}

// MarshalJSON keeps the winning strategy's fields at the top level next to
// alternatives and reasoning. Without it the promoted StrategyResult method
// would drop them.
func (r Recommendation) MarshalJSON() ([]byte, error) {
	head, err := json.Marshal(r.StrategyResult)
	if err != nil {
		return nil, err
	}
	tail, err := json.Marshal(struct {
		Alternatives []StrategyResult `json:"alternatives"`
		Reasoning    []string         `json:"reasoning"`
	}{r.Alternatives, r.Reasoning})
	if err != nil {
		return nil, err
	}
	out := append(head[:len(head)-1:len(head)-1], ',')
	return append(out, tail[1:]...), nil
}

// MarshalJSON writes amounts with a fixed two-decimal scale
func (t PricingTier) MarshalJSON() ([]byte, error) {
	type plain PricingTier
	return json.Marshal(struct {
		plain
		Price cents `json:"price"`
	}{plain(t), cents(t.Price)})
}

// MarshalJSON writes amounts with a fixed two-decimal scale
func (t ProfitTarget) MarshalJSON() ([]byte, error) {
	type plain ProfitTarget
	return json.Marshal(struct {
		plain
		MonthlyProfit cents `json:"monthlyProfit"`
	}{plain(t), cents(t.MonthlyProfit)})
}

// MarshalJSON writes amounts with a fixed two-decimal scale
func (p Profitability) MarshalJSON() ([]byte, error) {
	type plain Profitability
	return json.Marshal(struct {
		plain
		SellingPrice    cents `json:"sellingPrice"`
		ProfitPerUnit   cents `json:"profitPerUnit"`
		AnnualPotential cents `json:"annualPotential"`
	}{plain(p), cents(p.SellingPrice), cents(p.ProfitPerUnit), cents(p.AnnualPotential)})
}

// MarshalJSON writes amounts with a fixed two-decimal scale
func (e PriceEnding) MarshalJSON() ([]byte, error) {
	type plain PriceEnding
	return json.Marshal(struct {
		plain
		Price cents `json:"price"`
	}{plain(e), cents(e.Price)})
}
