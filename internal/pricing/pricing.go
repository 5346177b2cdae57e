// Package pricing is the single source of truth for booking money math.
// The server recomputes every quote from the catalog base price and the
// authoritative promo record; client-submitted figures are only cross-checked.
package pricing

import "github.com/shopspring/decimal"

// TaxRate is applied to the subtotal before discount.
const TaxRate = "0.06"

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Discount is a resolved promo: a percentage of the subtotal or a fixed amount.
type Discount struct {
	Type  string
	Value int64
}

// Quote holds all derived figures in integer currency units.
type Quote struct {
	Subtotal int64 `json:"subtotal"`
	Discount int64 `json:"discount"`
	Taxes    int64 `json:"taxes"`
	Total    int64 `json:"total"`
}

// Calculate derives a quote from a base price and quantity.
//
//	subtotal = price * qty
//	taxes    = round(subtotal * 0.06)
//	total    = subtotal + taxes - discount
//
// Rounding is half away from zero, matching round() on positive amounts.
// A fixed discount is uncapped: it may exceed the subtotal and drive the
// total negative.
func Calculate(basePrice int64, quantity int, promo *Discount) Quote {
	subtotal := basePrice * int64(quantity)

	sub := decimal.NewFromInt(subtotal)
	taxes := sub.Mul(decimal.RequireFromString(TaxRate)).Round(0).IntPart()

	var discount int64
	if promo != nil {
		switch promo.Type {
		case DiscountPercentage:
			discount = sub.Mul(decimal.NewFromInt(promo.Value)).Div(decimal.NewFromInt(100)).Round(0).IntPart()
		case DiscountFixed:
			discount = promo.Value
		}
	}

	return Quote{
		Subtotal: subtotal,
		Discount: discount,
		Taxes:    taxes,
		Total:    subtotal + taxes - discount,
	}
}

// Matches reports whether a client-computed quote agrees with q.
func (q Quote) Matches(subtotal, discount, taxes, total int64) bool {
	return q.Subtotal == subtotal && q.Discount == discount && q.Taxes == taxes && q.Total == total
}
