package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/store-admin-service/internal/entities"
	"github.com/shopspring/decimal"
)

type Order struct {
	OrderID      string              `db:"order_id"`
	CreatedAt    time.Time           `db:"created_at"`
	Status       string              `db:"status"`
	Discount     decimal.NullDecimal `db:"discount"`
	Tax          decimal.NullDecimal `db:"tax"`
	ShippingCost decimal.NullDecimal `db:"shipping_cost"`
	TotalAmount  decimal.Decimal     `db:"total_amount"`
}

type Delivery struct {
	OrderID string `db:"order_id"`
	Name    string `db:"name"`
	Address string `db:"address"`
	Pincode string `db:"pincode"`
	Phone   string `db:"phone"`
}

type Customer struct {
	OrderID string         `db:"order_id"`
	Name    string         `db:"name"`
	Email   string         `db:"email"`
	Phone   sql.NullString `db:"phone"`
}

type Item struct {
	OrderID  string          `db:"order_id"`
	Position int             `db:"position"`
	Name     string          `db:"name"`
	Quantity int             `db:"quantity"`
	Price    decimal.Decimal `db:"price"`
}

func DeliveryToEntity(d Delivery) entities.DeliveryAddress {
	return entities.DeliveryAddress{
		Name:    d.Name,
		Address: d.Address,
		Pincode: d.Pincode,
		Phone:   d.Phone,
	}
}

func CustomerToEntity(c Customer) entities.UserDetails {
	return entities.UserDetails{
		Name:  c.Name,
		Email: c.Email,
		Phone: nullStringToString(c.Phone),
	}
}

func ItemToEntity(i Item) entities.LineItem {
	return entities.LineItem{
		Name:     i.Name,
		Quantity: i.Quantity,
		Price:    i.Price,
	}
}

func OrderToEntity(o Order, d Delivery, c Customer, items []Item) entities.Order {
	order := entities.Order{
		OrderID:         o.OrderID,
		CreatedAt:       o.CreatedAt,
		Status:          entities.OrderStatus(o.Status),
		Discount:        o.Discount,
		Tax:             o.Tax,
		ShippingCost:    o.ShippingCost,
		TotalAmount:     o.TotalAmount,
		DeliveryAddress: DeliveryToEntity(d),
		UserDetails:     CustomerToEntity(c),
	}

	if len(items) > 0 {
		order.Items = make([]entities.LineItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
