package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

type LineItem struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// Total returns quantity * price.
func (i LineItem) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type DeliveryAddress struct {
	Name    string
	Address string
	Pincode string
	Phone   string
}

type UserDetails struct {
	Name  string
	Email string
	Phone string
}

type Order struct {
	OrderID   string
	CreatedAt time.Time
	Status    OrderStatus

	// тут без указателей, потому что предполагается что эти данные всегда присутствуют
	DeliveryAddress DeliveryAddress
	UserDetails     UserDetails
	Items           []LineItem

	Discount     decimal.NullDecimal
	Tax          decimal.NullDecimal
	ShippingCost decimal.NullDecimal

	// TotalAmount приходит из магазина и никогда не пересчитывается.
	TotalAmount decimal.Decimal
}

const shortIDLength = 8

// ShortID returns the last 8 characters of the order id.
func (o Order) ShortID() string {
	r := []rune(o.OrderID)
	if len(r) <= shortIDLength {
		return o.OrderID
	}
	return string(r[len(r)-shortIDLength:])
}

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidOrder  = errors.New("invalid order")
)
