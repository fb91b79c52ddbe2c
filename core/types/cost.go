package types

import "github.com/shopspring/decimal"

// CostBreakdown is the fully-loaded cost basis of one unit.
// Each component is rounded to cents before TotalCost is summed.
type CostBreakdown struct {
	ProductCost         decimal.Decimal `json:"productCost"`
	ShippingCost        decimal.Decimal `json:"shippingCost"`
	ProcessingFee       decimal.Decimal `json:"processingFee"`
	PlatformFee         decimal.Decimal `json:"platformFee"`
	MarketingAllocation decimal.Decimal `json:"marketingAllocation"`
	ReturnAllowance     decimal.Decimal `json:"returnAllowance"`
	TotalCost           decimal.Decimal `json:"totalCost"`
	Currency            Currency        `json:"currency"`
}

// Components returns the addends of TotalCost in a fixed order.
func (c CostBreakdown) Components() []decimal.Decimal {
	return []decimal.Decimal{
		c.ProductCost,
		c.ShippingCost,
		c.ProcessingFee,
		c.PlatformFee,
		c.MarketingAllocation,
		c.ReturnAllowance,
	}
}
