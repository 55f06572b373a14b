package service

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPricingCompute(t *testing.T) {
	p := Pricing{TaxRate: DefaultTaxRate}

	tests := []struct {
		name          string
		lines         []string
		discountType  DiscountType
		discountValue string
		subtotal      string
		tax           string
		discount      string
		total         string
	}{
		{"no discount", []string{"7.50", "5.00"}, DiscountFixed, "0", "12.50", "0.63", "0", "13.13"},
		{"fixed discount", []string{"10.00"}, DiscountFixed, "2", "10.00", "0.50", "2.00", "8.50"},
		{"percentage discount", []string{"20.00"}, DiscountPercentage, "10", "20.00", "1.00", "2.00", "19.00"},
		{"floored at zero", []string{"1.00"}, DiscountFixed, "5", "1.00", "0.05", "5.00", "0"},
		{"empty discount type is fixed", []string{"4.00"}, "", "1", "4.00", "0.20", "1.00", "3.20"},
		// 0.10 + 0.005 - 0.003 = 0.102
		{"total rounded once", []string{"0.10"}, DiscountPercentage, "3", "0.10", "0.01", "0", "0.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := make([]decimal.Decimal, len(tt.lines))
			for i, l := range tt.lines {
				lines[i] = decimal.RequireFromString(l)
			}
			got := p.Compute(lines, tt.discountType, decimal.RequireFromString(tt.discountValue))
			requireDecimal(t, tt.subtotal, got.Subtotal)
			requireDecimal(t, tt.tax, got.Tax)
			requireDecimal(t, tt.discount, got.Discount)
			requireDecimal(t, tt.total, got.Total)
		})
	}
}

func TestLineTotal(t *testing.T) {
	requireDecimal(t, "7.50", LineTotal(decimal.RequireFromString("2.50"), 3))
	requireDecimal(t, "0.99", LineTotal(decimal.RequireFromString("0.331"), 3))
}
