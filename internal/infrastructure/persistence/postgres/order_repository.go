package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/order"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create inserts the order and every line in a single transaction.
// Each line's price is read from the catalog inside the transaction
// and frozen into line_total; an unknown product id rolls the whole
// order back.
func (r *OrderRepository) Create(ctx context.Context, customer domain.CustomerInfo, cart []domain.CartItem) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	const insertOrder = `
		INSERT INTO orders (customer_name, phone, address, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	var orderID int64
	err = tx.QueryRow(ctx, insertOrder,
		customer.Name,
		customer.Phone,
		customer.Address,
		customer.Note,
	).Scan(&orderID)
	if err != nil {
		return 0, err
	}

	const selectPrice = `SELECT price FROM products WHERE id = $1;`
	const insertItem = `
		INSERT INTO order_items (order_id, product_id, quantity, line_total)
		VALUES ($1, $2, $3, $4);
	`
	for _, item := range cart {
		var price int64
		err := tx.QueryRow(ctx, selectPrice, item.ProductID).Scan(&price)
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.InvalidProductError{ProductID: item.ProductID}
		}
		if err != nil {
			return 0, err
		}

		lineTotal := price * int64(item.Quantity)
		if _, err := tx.Exec(ctx, insertItem, orderID, item.ProductID, item.Quantity, lineTotal); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return orderID, nil
}

// ListPending returns pending orders newest-first, each with its lines
// in insertion order.
func (r *OrderRepository) ListPending(ctx context.Context) ([]domain.WithItems, error) {
	const query = `
		SELECT
			o.id,
			o.customer_name,
			o.phone,
			o.address,
			o.note,
			o.status,
			o.created_at,
			p.name,
			p.flavour,
			oi.quantity,
			oi.line_total
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN products p ON p.id = oi.product_id
		WHERE o.status = 'pending'
		ORDER BY o.created_at DESC, o.id, oi.id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.WithItems, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var o domain.Order
		var item domain.Item
		err := rows.Scan(
			&o.ID,
			&o.CustomerName,
			&o.Phone,
			&o.Address,
			&o.Note,
			&o.Status,
			&o.CreatedAt,
			&item.ProductName,
			&item.Flavour,
			&item.Quantity,
			&item.LineTotal,
		)
		if err != nil {
			return nil, err
		}

		i, ok := index[o.ID]
		if !ok {
			orders = append(orders, domain.WithItems{Order: o})
			i = len(orders) - 1
			index[o.ID] = i
		}
		orders[i].Items = append(orders[i].Items, item)
	}
	return orders, rows.Err()
}

// Complete marks the order completed. Re-marking a completed order or
// targeting a missing id simply affects zero rows.
func (r *OrderRepository) Complete(ctx context.Context, orderID int64) error {
	const query = `UPDATE orders SET status = 'completed' WHERE id = $1;`
	_, err := r.pool.Exec(ctx, query, orderID)
	return err
}

// FindDetail loads one order with its lines, or nil when the id does
// not exist.
func (r *OrderRepository) FindDetail(ctx context.Context, orderID int64) (*domain.WithItems, error) {
	const orderQuery = `
		SELECT id, customer_name, phone, address, note, status, created_at
		FROM orders
		WHERE id = $1;
	`
	var o domain.Order
	err := r.pool.QueryRow(ctx, orderQuery, orderID).Scan(
		&o.ID,
		&o.CustomerName,
		&o.Phone,
		&o.Address,
		&o.Note,
		&o.Status,
		&o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	const itemsQuery = `
		SELECT p.name, p.flavour, oi.quantity, oi.line_total
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id;
	`
	rows, err := r.pool.Query(ctx, itemsQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	detail := &domain.WithItems{Order: o}
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ProductName, &item.Flavour, &item.Quantity, &item.LineTotal); err != nil {
			return nil, err
		}
		detail.Items = append(detail.Items, item)
	}
	return detail, rows.Err()
}
