// Package invoice turns an order into a one-page printable invoice.
package invoice

import (
	"github.com/SergeyBogomolovv/store-admin-service/internal/entities"
	"github.com/shopspring/decimal"
)

type TotalLine struct {
	Label    string
	Amount   decimal.Decimal
	Negative bool
}

type Totals struct {
	Subtotal decimal.Decimal
	// Lines holds the subtotal, the present adjustments and the final total, in display order.
	Lines []TotalLine
}

type adjustment struct {
	label    string
	negative bool
	value    func(o entities.Order) decimal.NullDecimal
}

// Порядок строк фиксирован: скидка, налог, доставка.
var adjustments = []adjustment{
	{label: "Discount", negative: true, value: func(o entities.Order) decimal.NullDecimal { return o.Discount }},
	{label: "Tax", value: func(o entities.Order) decimal.NullDecimal { return o.Tax }},
	{label: "Shipping", value: func(o entities.Order) decimal.NullDecimal { return o.ShippingCost }},
}

func present(v decimal.NullDecimal) bool {
	return v.Valid && v.Decimal.IsPositive()
}

// Subtotal sums quantity * price over all items.
func Subtotal(items []entities.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Total())
	}
	return sum
}

// ComputeTotals builds the totals block. The final line carries the order's
// own TotalAmount and is not derived from the lines above it.
func ComputeTotals(o entities.Order) Totals {
	subtotal := Subtotal(o.Items)

	lines := make([]TotalLine, 0, len(adjustments)+2)
	lines = append(lines, TotalLine{Label: "Subtotal", Amount: subtotal})

	for _, adj := range adjustments {
		v := adj.value(o)
		if !present(v) {
			continue
		}
		lines = append(lines, TotalLine{Label: adj.label, Amount: v.Decimal, Negative: adj.negative})
	}

	lines = append(lines, TotalLine{Label: "Total", Amount: o.TotalAmount})

	return Totals{Subtotal: subtotal, Lines: lines}
}

// FormatMoney renders d with exactly two decimals after the currency symbol.
func FormatMoney(currency string, d decimal.Decimal) string {
	return currency + d.StringFixed(2)
}

func (l TotalLine) Format(currency string) string {
	if l.Negative {
		return "-" + FormatMoney(currency, l.Amount)
	}
	return FormatMoney(currency, l.Amount)
}
