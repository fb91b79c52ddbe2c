// Package types defines the data model shared by every pricing stage.
package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Product is the externally supplied record to price. Every field is optional.
// Amounts accept JSON numbers, null and numeric strings. A blank string counts as
// absent and a decimal comma is read as a point ("19,99"); anything else, such as
// currency symbols or thousands separators, fails the decode.
type Product struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name,omitempty"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	Currency    Currency `json:"currency,omitempty"`

	Price         decimal.NullDecimal `json:"price"`
	CostPrice     decimal.NullDecimal `json:"costPrice"`
	SupplierPrice decimal.NullDecimal `json:"supplierPrice"`
	ShippingCost  decimal.NullDecimal `json:"shippingCost"`
	Shipping      decimal.NullDecimal `json:"shipping"`
}

// UnmarshalJSON decodes amounts leniently; see Product.
func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product
	aux := struct {
		*plain
		Price         looseAmount `json:"price"`
		CostPrice     looseAmount `json:"costPrice"`
		SupplierPrice looseAmount `json:"supplierPrice"`
		ShippingCost  looseAmount `json:"shippingCost"`
		Shipping      looseAmount `json:"shipping"`
	}{
		plain:         (*plain)(p),
		Price:         looseAmount{p.Price},
		CostPrice:     looseAmount{p.CostPrice},
		SupplierPrice: looseAmount{p.SupplierPrice},
		ShippingCost:  looseAmount{p.ShippingCost},
		Shipping:      looseAmount{p.Shipping},
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.Price = aux.Price.NullDecimal
	p.CostPrice = aux.CostPrice.NullDecimal
	p.SupplierPrice = aux.SupplierPrice.NullDecimal
	p.ShippingCost = aux.ShippingCost.NullDecimal
	p.Shipping = aux.Shipping.NullDecimal
	return nil
}

type looseAmount struct {
	decimal.NullDecimal
}

func (a *looseAmount) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || data[0] != '"' {
		return a.NullDecimal.UnmarshalJSON(data)
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		a.NullDecimal = decimal.NullDecimal{}
		return nil
	}
	if i := strings.IndexByte(s, ','); i >= 0 && !strings.Contains(s, ".") && strings.Count(s, ",") == 1 {
		if frac := len(s) - i - 1; frac == 1 || frac == 2 {
			s = s[:i] + "." + s[i+1:]
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}
	a.NullDecimal = decimal.NewNullDecimal(d)
	return nil
}

// BaseCost is the first present value of costPrice, supplierPrice and price.
func (p Product) BaseCost() (decimal.Decimal, bool) {
	return FirstPresent(p.CostPrice, p.SupplierPrice, p.Price)
}

// ShippingAmount is the first present value of shippingCost and shipping.
func (p Product) ShippingAmount() (decimal.Decimal, bool) {
	return FirstPresent(p.ShippingCost, p.Shipping)
}

// ReferencePrice is the anchor for simulated competitor prices: price, then costPrice.
func (p Product) ReferencePrice() (decimal.Decimal, bool) {
	return FirstPresent(p.Price, p.CostPrice)
}

// SearchText is the case-folded text used for category detection.
func (p Product) SearchText() string {
	return strings.ToLower(p.Name + " " + p.Category + " " + p.Description)
}

// FirstPresent returns the first valid value.
func FirstPresent(values ...decimal.NullDecimal) (decimal.Decimal, bool) {
	for _, v := range values {
		if v.Valid {
			return v.Decimal, true
		}
	}
	return decimal.Zero, false
}

// Amount builds a present NullDecimal from a float. Handy for literals.
func Amount(f float64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromFloat(f))
}

// Options tune strategy selection.
type Options struct {
	// PreferHighMargin adds a bonus to strategies above 40% margin
	PreferHighMargin bool `json:"preferHighMargin,omitempty"`

	// PreferVolume adds a bonus to strategies below 35% margin
	PreferVolume bool `json:"preferVolume,omitempty"`
}
