package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/store-admin-service/internal/entities"
	"github.com/SergeyBogomolovv/store-admin-service/pkg/trm"
	"github.com/SergeyBogomolovv/store-admin-service/pkg/utils"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)

	// Операции идемпотентны, т.к. используется ON CONFLICT DO NOTHING
	SaveItems(ctx context.Context, orderID string, items []entities.LineItem) error
	SaveCustomer(ctx context.Context, orderID string, u entities.UserDetails) error
	SaveDelivery(ctx context.Context, orderID string, d entities.DeliveryAddress) error
	SaveOrder(ctx context.Context, o entities.Order) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

var defaultRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
	}
}

func (s *orderService) SaveOrder(ctx context.Context, order entities.Order) error {
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if err := s.repo.SaveDelivery(ctx, order.OrderID, order.DeliveryAddress); err != nil {
				return fmt.Errorf("failed to save delivery: %w", err)
			}
			if err := s.repo.SaveCustomer(ctx, order.OrderID, order.UserDetails); err != nil {
				return fmt.Errorf("failed to save customer: %w", err)
			}
			if err := s.repo.SaveItems(ctx, order.OrderID, order.Items); err != nil {
				return fmt.Errorf("failed to save items: %w", err)
			}

			s.logger.Debug("order saved", slog.String("order_id", order.OrderID))
			return nil
		})
	}

	return utils.Retry(ctx, defaultRetry, fn)
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal order", slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(ctx, defaultRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	s.store(order)
	return order, nil
}

func (s *orderService) LatestOrders(ctx context.Context, limit int) ([]entities.Order, error) {
	var orders []entities.Order
	fn := func() error {
		var err error
		orders, err = s.repo.LatestOrders(ctx, limit)
		return err
	}
	if err := utils.Retry(ctx, defaultRetry, fn); err != nil {
		return nil, fmt.Errorf("failed to get latest orders: %w", err)
	}
	return orders, nil
}

// WarmUpCache loads the most recent orders into the cache.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to warm up cache: %w", err)
	}

	for _, order := range orders {
		s.store(order)
	}

	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func (s *orderService) store(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", order.OrderID), slog.Any("error", err))
		return
	}
	s.cache.Set(order.OrderID, data)
}

// IsNotFound reports whether err means the order does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, entities.ErrOrderNotFound)
}
