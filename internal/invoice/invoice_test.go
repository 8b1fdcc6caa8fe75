package invoice_test

import (
	"bytes"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/store-admin-service/internal/entities"
	"github.com/SergeyBogomolovv/store-admin-service/internal/invoice"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seller = invoice.Seller{
	Name:        "Your Store Name",
	ContactLine: "Contact us: support@example.com",
	Currency:    "Rs.",
	DateLayout:  "02/01/2006",
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func some(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(money(s))
}

func testOrder() entities.Order {
	return entities.Order{
		OrderID:   "ord-2024-0000abcd1234",
		CreatedAt: time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC),
		Status:    entities.StatusShipped,
		Items: []entities.LineItem{
			{Name: "Chocolate Cake", Quantity: 2, Price: money("10.00")},
			{Name: "Vanilla Cupcake", Quantity: 1, Price: money("5.50")},
		},
		DeliveryAddress: entities.DeliveryAddress{
			Name:    "Jane Doe",
			Address: "12 Baker Street",
			Pincode: "302001",
			Phone:   "+91-9000000001",
		},
		UserDetails: entities.UserDetails{
			Name:  "John Doe",
			Email: "john@example.com",
			Phone: "+91-9000000000",
		},
		TotalAmount: money("25.50"),
	}
}

func labels(lines []invoice.TotalLine) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Label)
	}
	return out
}

func TestComputeTotals_Subtotal(t *testing.T) {
	totals := invoice.ComputeTotals(testOrder())

	assert.Equal(t, "25.50", totals.Subtotal.StringFixed(2))
	assert.Equal(t, []string{"Subtotal", "Total"}, labels(totals.Lines))
}

func TestComputeTotals_Adjustments(t *testing.T) {
	order := testOrder()
	order.Discount = some("5.00")
	order.Tax = some("2.00")
	order.ShippingCost = some("3.00")
	// не совпадает с 25.50 - 5 + 2 + 3 намеренно
	order.TotalAmount = money("99.99")

	totals := invoice.ComputeTotals(order)
	require.Len(t, totals.Lines, 5)

	got := make([]string, 0, len(totals.Lines))
	for _, l := range totals.Lines {
		got = append(got, l.Label+" "+l.Format("Rs."))
	}
	assert.Equal(t, []string{
		"Subtotal Rs.25.50",
		"Discount -Rs.5.00",
		"Tax Rs.2.00",
		"Shipping Rs.3.00",
		"Total Rs.99.99",
	}, got)
}

func TestComputeTotals_OmitsNonPositive(t *testing.T) {
	testCases := []struct {
		name  string
		order func(o *entities.Order)
		want  []string
	}{
		{
			name:  "zero discount",
			order: func(o *entities.Order) { o.Discount = some("0") },
			want:  []string{"Subtotal", "Total"},
		},
		{
			name:  "absent discount",
			order: func(o *entities.Order) { o.Discount = decimal.NullDecimal{} },
			want:  []string{"Subtotal", "Total"},
		},
		{
			name:  "negative tax",
			order: func(o *entities.Order) { o.Tax = some("-1.00") },
			want:  []string{"Subtotal", "Total"},
		},
		{
			name: "only shipping",
			order: func(o *entities.Order) {
				o.Discount = some("0.00")
				o.ShippingCost = some("0.01")
			},
			want: []string{"Subtotal", "Shipping", "Total"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			order := testOrder()
			tc.order(&order)
			assert.Equal(t, tc.want, labels(invoice.ComputeTotals(order).Lines))
		})
	}
}

func TestComputeTotals_Deterministic(t *testing.T) {
	order := testOrder()
	order.Tax = some("1.25")
	assert.Equal(t, invoice.ComputeTotals(order), invoice.ComputeTotals(order))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "Rs.5.50", invoice.FormatMoney("Rs.", money("5.5")))
	assert.Equal(t, "Rs.0.00", invoice.FormatMoney("Rs.", decimal.Zero))
	assert.Equal(t, "$3.33", invoice.FormatMoney("$", money("3.3333")))
	assert.Equal(t, "$2.01", invoice.FormatMoney("$", money("2.005")))
}

func TestLayout(t *testing.T) {
	order := testOrder()
	order.Discount = some("5")

	doc := invoice.Layout(order, seller)

	assert.Equal(t, invoice.Header{
		Seller:  "Your Store Name",
		Title:   "INVOICE",
		Number:  "#abcd1234",
		DateStr: "Date: 05/03/2024",
	}, doc.Header)
	assert.Equal(t, []string{"John Doe", "john@example.com", "+91-9000000000"}, doc.BillTo.Lines)
	assert.Equal(t, []string{"Jane Doe", "12 Baker Street", "302001", "+91-9000000001"}, doc.ShipTo.Lines)
	assert.Equal(t, []string{"Item", "Quantity", "Price", "Total"}, doc.Columns)
	assert.Equal(t, [][]string{
		{"Chocolate Cake", "2", "Rs.10.00", "Rs.20.00"},
		{"Vanilla Cupcake", "1", "Rs.5.50", "Rs.5.50"},
	}, doc.Rows)
	assert.Equal(t, [][2]string{
		{"Subtotal:", "Rs.25.50"},
		{"Discount:", "-Rs.5.00"},
		{"Total:", "Rs.25.50"},
	}, doc.Totals)
	assert.Equal(t, []string{
		"Thank you for your business!",
		"Contact us: support@example.com",
		"Order ID: ord-2024-0000abcd1234 | Status: SHIPPED",
	}, doc.Footer)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "invoice-abcd1234.pdf", invoice.Filename(testOrder()))
	assert.Equal(t, "invoice-short.pdf", invoice.Filename(entities.Order{OrderID: "short"}))
}

var pageObject = regexp.MustCompile(`/Type\s*/Page\b`)

func TestRenderer_Render(t *testing.T) {
	r := invoice.NewRenderer(seller)

	first, err := r.Render(testOrder())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(first, []byte("%PDF-")))
	assert.Len(t, pageObject.FindAll(first, -1), 1)

	second, err := r.Render(testOrder())
	require.NoError(t, err)
	assert.Equal(t, first, second, "same order must render identical bytes")

	changed := testOrder()
	changed.Status = entities.StatusDelivered
	third, err := r.Render(changed)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestRenderer_SinglePageForManyItems(t *testing.T) {
	order := testOrder()
	order.Items = nil
	for i := range 200 {
		order.Items = append(order.Items, entities.LineItem{
			Name:     fmt.Sprintf("Item %d", i),
			Quantity: 1,
			Price:    money("1.00"),
		})
	}

	out, err := invoice.NewRenderer(seller).Render(order)
	require.NoError(t, err)
	assert.Len(t, pageObject.FindAll(out, -1), 1)
}

func TestRenderer_BrokenFontYieldsNoBytes(t *testing.T) {
	r := invoice.NewRenderer(seller, invoice.WithUTF8Font([]byte("not a font"), []byte("not a font")))

	out, err := r.Render(testOrder())
	assert.Error(t, err)
	assert.Nil(t, out)
}
