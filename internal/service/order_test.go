package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/store-admin-service/internal/entities"
	"github.com/SergeyBogomolovv/store-admin-service/internal/service"
	mocks "github.com/SergeyBogomolovv/store-admin-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/store-admin-service/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testOrder(id string) entities.Order {
	return entities.Order{
		OrderID:   id,
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Status:    entities.StatusConfirmed,
		DeliveryAddress: entities.DeliveryAddress{
			Name:    "Asha Rao",
			Address: "12 MG Road, Bengaluru",
			Pincode: "560001",
			Phone:   "+919800000000",
		},
		UserDetails: entities.UserDetails{
			Name:  "Asha Rao",
			Email: "asha@example.com",
			Phone: "+919800000000",
		},
		Items: []entities.LineItem{
			{Name: "Chocolate Cake", Quantity: 2, Price: decimal.RequireFromString("10.00")},
			{Name: "Candles", Quantity: 1, Price: decimal.RequireFromString("5.50")},
		},
		Tax:         decimal.NewNullDecimal(decimal.RequireFromString("1.25")),
		TotalAmount: decimal.RequireFromString("26.75"),
	}
}

func TestOrderService_SaveOrder(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo)

	dbError := errors.New("db error")
	order := testOrder("order-123")

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, order).Return(nil)
				orderRepo.EXPECT().SaveDelivery(mock.Anything, "order-123", order.DeliveryAddress).Return(nil)
				orderRepo.EXPECT().SaveCustomer(mock.Anything, "order-123", order.UserDetails).Return(nil)
				orderRepo.EXPECT().SaveItems(mock.Anything, "order-123", order.Items).Return(nil)
			},
		},
		{
			name: "SaveDelivery fails on every attempt",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().SaveDelivery(mock.Anything, mock.Anything, mock.Anything).
					Return(dbError)
			},
			wantErr: dbError,
		},
		{
			name: "Retry works (first attempt fails, second succeeds)",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				// первая попытка - SaveItems падает
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Times(2)
				orderRepo.EXPECT().SaveDelivery(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)
				orderRepo.EXPECT().SaveCustomer(mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)
				orderRepo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).
					Once().Return(errors.New("temporary error"))
				// вторая попытка - всё ок
				orderRepo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).
					Once().Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					})

			tc.mockBehavior(orderRepo)

			svc := service.NewOrderService(newTestLogger(), tx, orderRepo, cache)

			err := svc.SaveOrder(context.Background(), order)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestOrderService_GetOrderByID(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache)

	validOrder := testOrder("123")
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:    "success from cache",
			orderID: "123",
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return(validData, true).Once()
			},
		},
		{
			name:    "cache hit but unmarshal fails",
			orderID: "123",
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return([]byte("broken"), true).Once()
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name:    "success from repo and set to cache",
			orderID: "123",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(validOrder, nil).Once()
				cache.EXPECT().
					Set("123", validData).
					Return().Once()
			},
		},
		{
			name:    "not found in repo is not retried",
			orderID: "not-exist",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("not-exist").
					Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "second attempt from repo",
			orderID: "123",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(entities.Order{}, errors.New("some error")).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(validOrder, nil).Once()
				cache.EXPECT().
					Set("123", validData).
					Return().Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)

			tc.mockBehavior(orderRepo, cache)

			svc := service.NewOrderService(newTestLogger(), tx, orderRepo, cache)

			got, err := svc.GetOrderByID(context.Background(), tc.orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, validOrder.OrderID, got.OrderID)
			assert.True(t, validOrder.TotalAmount.Equal(got.TotalAmount))
			assert.Len(t, got.Items, len(validOrder.Items))
		})
	}
}

func TestOrderService_LatestOrders(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		orders := []entities.Order{testOrder("b"), testOrder("a")}
		orderRepo.EXPECT().LatestOrders(mock.Anything, 20).Return(orders, nil).Once()

		svc := service.NewOrderService(newTestLogger(), txMocks.NewMockManager(t), orderRepo, mocks.NewMockCache(t))

		got, err := svc.LatestOrders(context.Background(), 20)
		require.NoError(t, err)
		assert.Equal(t, orders, got)
	})

	t.Run("cancelled context stops retries", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		orderRepo.EXPECT().LatestOrders(mock.Anything, 20).Return(nil, errors.New("db down")).Once()

		svc := service.NewOrderService(newTestLogger(), txMocks.NewMockManager(t), orderRepo, mocks.NewMockCache(t))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.LatestOrders(ctx, 20)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestOrderService_WarmUpCache(t *testing.T) {
	orderRepo := mocks.NewMockOrderRepo(t)
	cache := mocks.NewMockCache(t)

	orders := []entities.Order{testOrder("first"), testOrder("second")}
	orderRepo.EXPECT().LatestOrders(mock.Anything, 100).Return(orders, nil).Once()
	cache.EXPECT().Set("first", mock.Anything).Return().Once()
	cache.EXPECT().Set("second", mock.Anything).Return().Once()

	svc := service.NewOrderService(newTestLogger(), txMocks.NewMockManager(t), orderRepo, cache)
	require.NoError(t, svc.WarmUpCache(context.Background(), 100))
}
