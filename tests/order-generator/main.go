package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/store-admin-service/internal/entities"
	"github.com/SergeyBogomolovv/store-admin-service/internal/handler"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

var (
	products = []struct {
		name  string
		price string
	}{
		{"Chocolate Cake", "24.99"},
		{"Vanilla Cupcake", "3.50"},
		{"Red Velvet", "27.00"},
		{"Strawberry Pie", "18.75"},
		{"Birthday Candles", "1.20"},
	}

	statuses = []entities.OrderStatus{
		entities.StatusPending,
		entities.StatusConfirmed,
		entities.StatusShipped,
		entities.StatusDelivered,
		entities.StatusCancelled,
	}

	names = []string{"Asha Rao", "John Doe", "Jane Smith", "Ravi Kumar"}
)

func optional(chance int, min, max int64) decimal.NullDecimal {
	if rand.Intn(100) >= chance {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.New(min+rand.Int63n(max-min+1), -2))
}

func generateRandomOrder() handler.Order {
	name := names[rand.Intn(len(names))]
	email := strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com"
	phone := fmt.Sprintf("+91%010d", rand.Int63n(9999999999))

	items := make([]handler.LineItem, 0, 3)
	subtotal := decimal.Zero
	for range rand.Intn(3) + 1 {
		p := products[rand.Intn(len(products))]
		item := handler.LineItem{
			Name:     p.name,
			Quantity: rand.Intn(4) + 1,
			Price:    decimal.RequireFromString(p.price),
		}
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		items = append(items, item)
	}

	order := handler.Order{
		OrderID:   "ORD-" + strings.ToUpper(uuid.NewString()),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Status:    string(statuses[rand.Intn(len(statuses))]),
		DeliveryAddress: handler.DeliveryAddress{
			Name:    name,
			Address: fmt.Sprintf("%d MG Road, Bengaluru", rand.Intn(200)+1),
			Pincode: fmt.Sprintf("%06d", 560000+rand.Intn(100)),
			Phone:   phone,
		},
		UserDetails: handler.UserDetails{
			Name:  name,
			Email: email,
			Phone: phone,
		},
		Items:        items,
		Discount:     optional(30, 100, 500),
		Tax:          optional(70, 50, 300),
		ShippingCost: optional(50, 0, 400),
	}

	total := subtotal
	if order.Discount.Valid {
		total = total.Sub(order.Discount.Decimal)
	}
	if order.Tax.Valid {
		total = total.Add(order.Tax.Decimal)
	}
	if order.ShippingCost.Valid {
		total = total.Add(order.ShippingCost.Decimal)
	}
	order.TotalAmount = total

	return order
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "orders", "orders topic")
	interval := flag.Duration("interval", 2*time.Second, "delay between orders")
	invalidRate := flag.Int("invalid", 10, "percentage of broken messages, they end up in the DLQ")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:                  *topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			order := generateRandomOrder()
			data, err := json.Marshal(order)
			if err != nil {
				logger.Error("failed to marshal order", slog.Any("error", err))
				continue
			}
			if rand.Intn(100) < *invalidRate {
				data = data[:len(data)/2]
			}

			msg := kafka.Message{Key: []byte(order.OrderID), Value: data}
			if err := writer.WriteMessages(ctx, msg); err != nil {
				logger.Error("failed to publish order", slog.Any("error", err))
				continue
			}
			logger.Info("order generated", slog.String("order_id", order.OrderID), slog.String("total", order.TotalAmount.StringFixed(2)))
		case <-ctx.Done():
			return
		}
	}
}
