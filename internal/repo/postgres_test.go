//go:build integration

package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/store-admin-service/internal/entities"
	"github.com/SergeyBogomolovv/store-admin-service/internal/postgres"
	"github.com/SergeyBogomolovv/store-admin-service/internal/repo"
	"github.com/SergeyBogomolovv/store-admin-service/pkg/trm"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("store"),
		tcpostgres.WithUsername("store"),
		tcpostgres.WithPassword("secret"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, postgres.Migrate(db, "../../migrations"))
	return db
}

func newTestOrder(createdAt time.Time) entities.Order {
	return entities.Order{
		OrderID:   uuid.NewString(),
		CreatedAt: createdAt,
		Status:    entities.StatusConfirmed,
		Items: []entities.LineItem{
			{Name: "Chocolate Cake", Quantity: 2, Price: decimal.RequireFromString("10.00")},
			{Name: "Vanilla Cupcake", Quantity: 1, Price: decimal.RequireFromString("5.50")},
		},
		DeliveryAddress: entities.DeliveryAddress{Name: "Jane", Address: "12 Baker Street", Pincode: "302001", Phone: "+919000000001"},
		UserDetails:     entities.UserDetails{Name: "John", Email: "john@example.com"},
		Discount:        decimal.NewNullDecimal(decimal.RequireFromString("5.00")),
		TotalAmount:     decimal.RequireFromString("20.50"),
	}
}

func saveOrder(t *testing.T, r interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveDelivery(ctx context.Context, orderID string, d entities.DeliveryAddress) error
	SaveCustomer(ctx context.Context, orderID string, u entities.UserDetails) error
	SaveItems(ctx context.Context, orderID string, items []entities.LineItem) error
}, tx trm.Manager, o entities.Order) {
	t.Helper()
	err := tx.Do(context.Background(), func(ctx context.Context) error {
		if err := r.SaveOrder(ctx, o); err != nil {
			return err
		}
		if err := r.SaveDelivery(ctx, o.OrderID, o.DeliveryAddress); err != nil {
			return err
		}
		if err := r.SaveCustomer(ctx, o.OrderID, o.UserDetails); err != nil {
			return err
		}
		return r.SaveItems(ctx, o.OrderID, o.Items)
	})
	require.NoError(t, err)
}

func TestPostgresRepo(t *testing.T) {
	db := setupTestDB(t)
	r := repo.NewPostgresRepo(db)
	tx := trm.NewManager(db)
	ctx := context.Background()

	base := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	older := newTestOrder(base)
	newer := newTestOrder(base.Add(time.Hour))
	newer.Discount = decimal.NullDecimal{}

	saveOrder(t, r, tx, older)
	saveOrder(t, r, tx, newer)
	// повторное сохранение идемпотентно
	saveOrder(t, r, tx, older)

	t.Run("get by id", func(t *testing.T) {
		got, err := r.GetOrderByID(ctx, older.OrderID)
		require.NoError(t, err)

		assert.Equal(t, older.OrderID, got.OrderID)
		assert.True(t, older.CreatedAt.Equal(got.CreatedAt))
		assert.Equal(t, older.Status, got.Status)
		assert.Equal(t, older.DeliveryAddress, got.DeliveryAddress)
		assert.Equal(t, older.UserDetails, got.UserDetails)
		assert.True(t, got.Discount.Valid)
		assert.True(t, older.Discount.Decimal.Equal(got.Discount.Decimal))
		assert.False(t, got.Tax.Valid)
		assert.True(t, older.TotalAmount.Equal(got.TotalAmount))

		require.Len(t, got.Items, 2)
		assert.Equal(t, "Chocolate Cake", got.Items[0].Name)
		assert.Equal(t, 2, got.Items[0].Quantity)
		assert.True(t, decimal.RequireFromString("10").Equal(got.Items[0].Price))
		assert.Equal(t, "Vanilla Cupcake", got.Items[1].Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := r.GetOrderByID(ctx, "missing")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("latest orders", func(t *testing.T) {
		got, err := r.LatestOrders(ctx, 10)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, newer.OrderID, got[0].OrderID)
		assert.Equal(t, older.OrderID, got[1].OrderID)
		assert.False(t, got[0].Discount.Valid)
		assert.Len(t, got[1].Items, 2)

		got, err = r.LatestOrders(ctx, 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, newer.OrderID, got[0].OrderID)
	})
}

func TestPostgresRepo_KeepsDecimalPrecision(t *testing.T) {
	db := setupTestDB(t)
	r := repo.NewPostgresRepo(db)
	tx := trm.NewManager(db)

	order := newTestOrder(time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC))
	order.Items = []entities.LineItem{
		{Name: "Macaron", Quantity: 8, Price: decimal.RequireFromString("0.125")},
	}
	order.Discount = decimal.NewNullDecimal(decimal.RequireFromString("0.0625"))
	order.Tax = decimal.NewNullDecimal(decimal.RequireFromString("0.333"))
	order.ShippingCost = decimal.NewNullDecimal(decimal.RequireFromString("12345678901234.5"))
	order.TotalAmount = decimal.RequireFromString("1.0005")

	saveOrder(t, r, tx, order)

	got, err := r.GetOrderByID(context.Background(), order.OrderID)
	require.NoError(t, err)

	require.Len(t, got.Items, 1)
	assert.True(t, order.Items[0].Price.Equal(got.Items[0].Price), "price %s", got.Items[0].Price)
	assert.True(t, order.Discount.Decimal.Equal(got.Discount.Decimal), "discount %s", got.Discount.Decimal)
	assert.True(t, order.Tax.Decimal.Equal(got.Tax.Decimal), "tax %s", got.Tax.Decimal)
	assert.True(t, order.ShippingCost.Decimal.Equal(got.ShippingCost.Decimal), "shipping %s", got.ShippingCost.Decimal)
	assert.True(t, order.TotalAmount.Equal(got.TotalAmount), "total %s", got.TotalAmount)
	assert.True(t, decimal.RequireFromString("1").Equal(got.Items[0].Total()))
}
