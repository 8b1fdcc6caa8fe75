package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/store-admin-service/internal/entities"
	"github.com/SergeyBogomolovv/store-admin-service/internal/invoice"
	"github.com/SergeyBogomolovv/store-admin-service/pkg/cache"
	"github.com/cespare/xxhash/v2"
)

type OrderGetter interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
}

type InvoiceRenderer interface {
	Render(o entities.Order) ([]byte, error)
}

// InvoiceCache keeps rendered documents between requests.
type InvoiceCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

type invoiceService struct {
	logger   *slog.Logger
	orders   OrderGetter
	renderer InvoiceRenderer
	cache    InvoiceCache
}

func NewInvoiceService(logger *slog.Logger, orders OrderGetter, renderer InvoiceRenderer, cache InvoiceCache) *invoiceService {
	return &invoiceService{
		logger:   logger.With(slog.String("service", "invoice")),
		orders:   orders,
		renderer: renderer,
		cache:    cache,
	}
}

// GenerateInvoice renders the invoice of a stored order. Only stored orders
// go through the cache; cache failures are only logged.
func (s *invoiceService) GenerateInvoice(ctx context.Context, orderID string) (entities.Invoice, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Invoice{}, err
	}

	logger := s.logger.With(slog.String("order_id", order.OrderID))

	key, err := invoiceKey(order)
	if err != nil {
		logger.WarnContext(ctx, "failed to build invoice cache key", slog.Any("error", err))
	}

	if key != "" {
		content, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			invoicesGenerated.WithLabelValues("cache").Inc()
			return newInvoice(order, content), nil
		case !errors.Is(err, cache.ErrCacheMiss):
			logger.WarnContext(ctx, "failed to read invoice cache", slog.Any("error", err))
		}
	}

	content, err := s.render(order)
	if err != nil {
		return entities.Invoice{}, err
	}

	if key != "" {
		if err := s.cache.Set(ctx, key, content); err != nil {
			logger.WarnContext(ctx, "failed to store invoice in cache", slog.Any("error", err))
		}
	}

	return newInvoice(order, content), nil
}

// RenderInvoice renders the invoice of a client-supplied order, bypassing the cache.
func (s *invoiceService) RenderInvoice(ctx context.Context, order entities.Order) (entities.Invoice, error) {
	content, err := s.render(order)
	if err != nil {
		return entities.Invoice{}, err
	}
	return newInvoice(order, content), nil
}

func (s *invoiceService) render(order entities.Order) ([]byte, error) {
	content, err := s.renderer.Render(order)
	if err != nil {
		invoicesGenerated.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}
	invoicesGenerated.WithLabelValues("render").Inc()
	return content, nil
}

func newInvoice(order entities.Order, content []byte) entities.Invoice {
	return entities.Invoice{
		Filename:    invoice.Filename(order),
		ContentType: entities.InvoiceContentType,
		Content:     content,
	}
}

// invoiceKey changes whenever any field of the order changes.
func invoiceKey(order entities.Order) (string, error) {
	data, err := order.Marshal()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%016x", order.OrderID, xxhash.Sum64(data)), nil
}
