package entities_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/store-admin-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineItem_Total(t *testing.T) {
	item := entities.LineItem{Name: "Cake", Quantity: 3, Price: decimal.RequireFromString("10.10")}
	assert.Equal(t, "30.30", item.Total().StringFixed(2))

	zero := entities.LineItem{Name: "Gift", Quantity: 0, Price: decimal.RequireFromString("5")}
	assert.True(t, zero.Total().IsZero())
}

func TestOrder_ShortID(t *testing.T) {
	testCases := []struct {
		id   string
		want string
	}{
		{id: "ORD-2024-00012345", want: "00012345"},
		{id: "12345678", want: "12345678"},
		{id: "abc", want: "abc"},
		{id: "заказ-номер-один", want: "мер-один"},
	}

	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			assert.Equal(t, tc.want, entities.Order{OrderID: tc.id}.ShortID())
		})
	}
}

func TestOrder_MarshalUnmarshal(t *testing.T) {
	order := entities.Order{
		OrderID:   "ORD-1",
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Status:    entities.StatusShipped,
		Items: []entities.LineItem{
			{Name: "Cake", Quantity: 2, Price: decimal.RequireFromString("10.00")},
		},
		Tax:         decimal.NewNullDecimal(decimal.RequireFromString("1.25")),
		TotalAmount: decimal.RequireFromString("21.25"),
	}

	data, err := order.Marshal()
	require.NoError(t, err)

	var got entities.Order
	require.NoError(t, got.Unmarshal(data))

	assert.Equal(t, order.OrderID, got.OrderID)
	assert.True(t, order.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, order.Status, got.Status)
	assert.True(t, got.Tax.Valid)
	assert.True(t, order.Tax.Decimal.Equal(got.Tax.Decimal))
	assert.False(t, got.Discount.Valid)
	assert.True(t, order.TotalAmount.Equal(got.TotalAmount))
	require.Len(t, got.Items, 1)
	assert.True(t, order.Items[0].Price.Equal(got.Items[0].Price))
}

func TestOrder_UnmarshalInvalid(t *testing.T) {
	var o entities.Order
	err := o.Unmarshal([]byte("not gob"))
	assert.ErrorIs(t, err, entities.ErrInvalidOrder)
}
