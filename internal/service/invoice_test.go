package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/store-admin-service/internal/entities"
	"github.com/SergeyBogomolovv/store-admin-service/internal/service"
	mocks "github.com/SergeyBogomolovv/store-admin-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/store-admin-service/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInvoiceService_GenerateInvoice(t *testing.T) {
	type MockBehavior func(orders *mocks.MockOrderGetter, renderer *mocks.MockInvoiceRenderer, cache *mocks.MockInvoiceCache)

	order := testOrder("ORD-2024-00012345")
	pdf := []byte("%PDF-1.3 rendered")
	renderErr := errors.New("font error")

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		want         []byte
		wantErr      error
	}{
		{
			name: "rendered on cache miss and stored",
			mockBehavior: func(orders *mocks.MockOrderGetter, renderer *mocks.MockInvoiceRenderer, c *mocks.MockInvoiceCache) {
				orders.EXPECT().GetOrderByID(mock.Anything, order.OrderID).Return(order, nil).Once()
				c.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, cache.ErrCacheMiss).Once()
				renderer.EXPECT().Render(order).Return(pdf, nil).Once()
				c.EXPECT().Set(mock.Anything, mock.Anything, pdf).Return(nil).Once()
			},
			want: pdf,
		},
		{
			name: "cache hit skips rendering",
			mockBehavior: func(orders *mocks.MockOrderGetter, _ *mocks.MockInvoiceRenderer, c *mocks.MockInvoiceCache) {
				orders.EXPECT().GetOrderByID(mock.Anything, order.OrderID).Return(order, nil).Once()
				c.EXPECT().Get(mock.Anything, mock.Anything).Return([]byte("cached"), nil).Once()
			},
			want: []byte("cached"),
		},
		{
			name: "cache failures do not fail the request",
			mockBehavior: func(orders *mocks.MockOrderGetter, renderer *mocks.MockInvoiceRenderer, c *mocks.MockInvoiceCache) {
				orders.EXPECT().GetOrderByID(mock.Anything, order.OrderID).Return(order, nil).Once()
				c.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused")).Once()
				renderer.EXPECT().Render(order).Return(pdf, nil).Once()
				c.EXPECT().Set(mock.Anything, mock.Anything, pdf).Return(errors.New("connection refused")).Once()
			},
			want: pdf,
		},
		{
			name: "unknown order",
			mockBehavior: func(orders *mocks.MockOrderGetter, _ *mocks.MockInvoiceRenderer, _ *mocks.MockInvoiceCache) {
				orders.EXPECT().GetOrderByID(mock.Anything, order.OrderID).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "render error propagates and nothing is cached",
			mockBehavior: func(orders *mocks.MockOrderGetter, renderer *mocks.MockInvoiceRenderer, c *mocks.MockInvoiceCache) {
				orders.EXPECT().GetOrderByID(mock.Anything, order.OrderID).Return(order, nil).Once()
				c.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, cache.ErrCacheMiss).Once()
				renderer.EXPECT().Render(order).Return(nil, renderErr).Once()
			},
			wantErr: renderErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderGetter(t)
			renderer := mocks.NewMockInvoiceRenderer(t)
			invoiceCache := mocks.NewMockInvoiceCache(t)

			tc.mockBehavior(orders, renderer, invoiceCache)

			svc := service.NewInvoiceService(newTestLogger(), orders, renderer, invoiceCache)

			got, err := svc.GenerateInvoice(context.Background(), order.OrderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "invoice-00012345.pdf", got.Filename)
			assert.Equal(t, entities.InvoiceContentType, got.ContentType)
			assert.Equal(t, tc.want, got.Content)
		})
	}
}

func TestInvoiceService_CacheKeyFollowsOrderContent(t *testing.T) {
	orders := mocks.NewMockOrderGetter(t)
	renderer := mocks.NewMockInvoiceRenderer(t)
	invoiceCache := mocks.NewMockInvoiceCache(t)

	order := testOrder("order-1")
	changed := testOrder("order-1")
	changed.Status = entities.StatusShipped

	orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(order, nil).Twice()
	orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(changed, nil).Once()

	var keys []string
	invoiceCache.EXPECT().Get(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, key string) ([]byte, error) {
			keys = append(keys, key)
			return nil, cache.ErrCacheMiss
		})
	invoiceCache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	renderer.EXPECT().Render(mock.Anything).Return([]byte("pdf"), nil)

	svc := service.NewInvoiceService(newTestLogger(), orders, renderer, invoiceCache)

	for range 3 {
		_, err := svc.GenerateInvoice(context.Background(), "order-1")
		require.NoError(t, err)
	}

	require.Len(t, keys, 3)
	assert.Equal(t, keys[0], keys[1])
	assert.NotEqual(t, keys[0], keys[2])
	assert.Contains(t, keys[0], "order-1:")
}

func TestInvoiceService_RenderInvoice(t *testing.T) {
	order := testOrder("ORD-2024-00012345")
	renderErr := errors.New("font error")

	testCases := []struct {
		name      string
		renderOut []byte
		renderErr error
	}{
		{name: "rendered without touching the cache", renderOut: []byte("%PDF-1.3 posted")},
		{name: "render error", renderErr: renderErr},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			renderer := mocks.NewMockInvoiceRenderer(t)
			renderer.EXPECT().Render(order).Return(tc.renderOut, tc.renderErr).Once()

			// без ожиданий: любой вызов кэша провалит тест
			invoiceCache := mocks.NewMockInvoiceCache(t)

			svc := service.NewInvoiceService(newTestLogger(), mocks.NewMockOrderGetter(t), renderer, invoiceCache)

			got, err := svc.RenderInvoice(context.Background(), order)
			if tc.renderErr != nil {
				assert.ErrorIs(t, err, tc.renderErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "invoice-00012345.pdf", got.Filename)
			assert.Equal(t, tc.renderOut, got.Content)
		})
	}
}
