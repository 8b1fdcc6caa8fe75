package handler

import (
	"time"

	"github.com/SergeyBogomolovv/store-admin-service/internal/entities"
	"github.com/shopspring/decimal"
)

// Order представляет заказ
type Order struct {
	OrderID         string              `json:"order_id" validate:"required"`
	CreatedAt       time.Time           `json:"created_at" validate:"required"`
	Status          string              `json:"status" validate:"required"`
	DeliveryAddress DeliveryAddress     `json:"delivery_address" validate:"required"`
	UserDetails     UserDetails         `json:"user_details" validate:"required"`
	Items           []LineItem          `json:"items" validate:"dive"`
	Discount        decimal.NullDecimal `json:"discount" swaggertype:"string"`
	Tax             decimal.NullDecimal `json:"tax" swaggertype:"string"`
	ShippingCost    decimal.NullDecimal `json:"shipping_cost" swaggertype:"string"`
	TotalAmount     decimal.Decimal     `json:"total_amount" validate:"gte=0" swaggertype:"string" example:"25.50"`
}

// DeliveryAddress адрес доставки
type DeliveryAddress struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	Pincode string `json:"pincode" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
}

// UserDetails контакты покупателя
type UserDetails struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone,omitempty"`
}

// LineItem товар в заказе
type LineItem struct {
	Name     string          `json:"name" validate:"required"`
	Quantity int             `json:"quantity" validate:"gte=0"`
	Price    decimal.Decimal `json:"price" validate:"gte=0" swaggertype:"string" example:"10.00"`
}

func LineItemEntityToJSON(i entities.LineItem) LineItem {
	return LineItem{
		Name:     i.Name,
		Quantity: i.Quantity,
		Price:    i.Price,
	}
}

func LineItemJSONToEntity(i LineItem) entities.LineItem {
	return entities.LineItem{
		Name:     i.Name,
		Quantity: i.Quantity,
		Price:    i.Price,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, LineItemEntityToJSON(it))
	}

	return Order{
		OrderID:   o.OrderID,
		CreatedAt: o.CreatedAt,
		Status:    string(o.Status),
		DeliveryAddress: DeliveryAddress{
			Name:    o.DeliveryAddress.Name,
			Address: o.DeliveryAddress.Address,
			Pincode: o.DeliveryAddress.Pincode,
			Phone:   o.DeliveryAddress.Phone,
		},
		UserDetails: UserDetails{
			Name:  o.UserDetails.Name,
			Email: o.UserDetails.Email,
			Phone: o.UserDetails.Phone,
		},
		Items:        items,
		Discount:     o.Discount,
		Tax:          o.Tax,
		ShippingCost: o.ShippingCost,
		TotalAmount:  o.TotalAmount,
	}
}

func OrderJSONToEntity(o Order) entities.Order {
	items := make([]entities.LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, LineItemJSONToEntity(it))
	}

	return entities.Order{
		OrderID:   o.OrderID,
		CreatedAt: o.CreatedAt,
		Status:    entities.OrderStatus(o.Status),
		DeliveryAddress: entities.DeliveryAddress{
			Name:    o.DeliveryAddress.Name,
			Address: o.DeliveryAddress.Address,
			Pincode: o.DeliveryAddress.Pincode,
			Phone:   o.DeliveryAddress.Phone,
		},
		UserDetails: entities.UserDetails{
			Name:  o.UserDetails.Name,
			Email: o.UserDetails.Email,
			Phone: o.UserDetails.Phone,
		},
		Items:        items,
		Discount:     o.Discount,
		Tax:          o.Tax,
		ShippingCost: o.ShippingCost,
		TotalAmount:  o.TotalAmount,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderEntityToJSON(o))
	}
	return out
}

// RecoveryRequest тело запроса на восстановление пароля
type RecoveryRequest struct {
	Email string `json:"email" validate:"required,recovery_email" example:"user@example.com"`
}

// RecoveryForm состояние формы после попытки отправки
type RecoveryForm struct {
	Email   string `json:"email"`
	Busy    bool   `json:"busy"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
