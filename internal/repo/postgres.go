package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/store-admin-service/internal/entities"
	"github.com/SergeyBogomolovv/store-admin-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var (
	orderColumns    = []string{"order_id", "created_at", "status", "discount", "tax", "shipping_cost", "total_amount"}
	deliveryColumns = []string{"order_id", "name", "address", "pincode", "phone"}
	customerColumns = []string{"order_id", "name", "email", "phone"}
	itemColumns     = []string{"order_id", "position", "name", "quantity", "price"}
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC", "order_id").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.q(ctx).SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.OrderID
	}

	// Доставки, покупатели и товары подтягиваются одним запросом на таблицу
	var deliveries []Delivery
	if err := r.selectByOrderIDs(ctx, &deliveries, "deliveries", deliveryColumns, ids); err != nil {
		return nil, fmt.Errorf("failed to select deliveries: %w", err)
	}
	deliveryMap := make(map[string]Delivery, len(deliveries))
	for _, d := range deliveries {
		deliveryMap[d.OrderID] = d
	}

	var customers []Customer
	if err := r.selectByOrderIDs(ctx, &customers, "customers", customerColumns, ids); err != nil {
		return nil, fmt.Errorf("failed to select customers: %w", err)
	}
	customerMap := make(map[string]Customer, len(customers))
	for _, c := range customers {
		customerMap[c.OrderID] = c
	}

	var items []Item
	if err := r.selectByOrderIDs(ctx, &items, "items", itemColumns, ids); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	itemsMap := make(map[string][]Item, len(ids))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, deliveryMap[o.OrderID], customerMap[o.OrderID], itemsMap[o.OrderID]))
	}

	return result, nil
}

func (r *postgresRepo) selectByOrderIDs(ctx context.Context, dest any, table string, columns []string, ids []string) error {
	query, args := r.qb.Select(columns...).
		From(table).
		Where(sq.Eq{"order_id": ids}).
		OrderBy(orderByFor(table)).
		MustSql()

	return r.q(ctx).SelectContext(ctx, dest, query, args...)
}

func orderByFor(table string) string {
	if table == "items" {
		return "order_id, position"
	}
	return "order_id"
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.q(ctx).GetContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(deliveryColumns...).
		From("deliveries").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var delivery Delivery
	if err := r.q(ctx).GetContext(ctx, &delivery, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get delivery: %w", err)
	}

	query, args = r.qb.Select(customerColumns...).
		From("customers").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var customer Customer
	if err := r.q(ctx).GetContext(ctx, &customer, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get customer: %w", err)
	}

	query, args = r.qb.Select(itemColumns...).
		From("items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("position").
		MustSql()

	var items []Item
	if err := r.q(ctx).SelectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get items: %w", err)
	}

	return OrderToEntity(order, delivery, customer, items), nil
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(o.OrderID, o.CreatedAt, string(o.Status), o.Discount, o.Tax, o.ShippingCost, o.TotalAmount).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	if _, err := r.q(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveDelivery(ctx context.Context, orderID string, d entities.DeliveryAddress) error {
	query, args := r.qb.Insert("deliveries").
		Columns(deliveryColumns...).
		Values(orderID, d.Name, d.Address, d.Pincode, d.Phone).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	if _, err := r.q(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save delivery: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveCustomer(ctx context.Context, orderID string, u entities.UserDetails) error {
	query, args := r.qb.Insert("customers").
		Columns(customerColumns...).
		Values(orderID, u.Name, u.Email, nullString(u.Phone)).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	if _, err := r.q(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID string, items []entities.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("items").
		Columns(itemColumns...).
		Suffix("ON CONFLICT (order_id, position) DO NOTHING")

	for i, it := range items {
		q = q.Values(orderID, i, it.Name, it.Quantity, it.Price)
	}

	query, args := q.MustSql()
	if _, err := r.q(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func (r *postgresRepo) q(ctx context.Context) trm.Querier {
	return trm.QuerierFrom(ctx, r.db)
}
