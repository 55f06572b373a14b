package service

import "github.com/shopspring/decimal"

type DiscountType string

const (
	DiscountFixed      DiscountType = "fixed"
	DiscountPercentage DiscountType = "percentage"
)

// DefaultTaxRate is applied to the subtotal of every sale.
var DefaultTaxRate = decimal.NewFromFloat(0.05)

var hundred = decimal.NewFromInt(100)

// Pricing recomputes sale totals server-side. Subtotal, tax and discount are
// reported in cents; the total is taken from the unrounded tax and discount
// and rounded once.
type Pricing struct {
	TaxRate decimal.Decimal
}

type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// Compute derives subtotal, tax, discount and total from line totals.
// The total is floored at zero.
func (p Pricing) Compute(lineTotals []decimal.Decimal, discountType DiscountType, discountValue decimal.Decimal) Totals {
	subtotal := decimal.Sum(decimal.Zero, lineTotals...).Round(2)
	tax := subtotal.Mul(p.TaxRate)

	var discount decimal.Decimal
	switch discountType {
	case DiscountPercentage:
		discount = subtotal.Mul(discountValue).Div(hundred)
	default:
		discount = discountValue
	}

	total := subtotal.Add(tax).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	return Totals{
		Subtotal: subtotal,
		Tax:      tax.Round(2),
		Discount: discount.Round(2),
		Total:    total.Round(2),
	}
}

// sameAmount compares a client-submitted amount with a computed one at cent
// precision. A nil submission always matches.
func sameAmount(submitted *decimal.Decimal, computed decimal.Decimal) bool {
	return submitted == nil || submitted.Round(2).Equal(computed)
}
