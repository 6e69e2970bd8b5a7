package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/catalog"
	domain "github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/order"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) ListActive(ctx context.Context) ([]catalog.Product, error) {
	const query = `
		SELECT id, name, flavour, pack_size, price, is_active
		FROM products
		WHERE is_active = TRUE
		ORDER BY id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]catalog.Product, 0)
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Flavour, &p.PackSize, &p.Price, &p.IsActive); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) PriceByID(ctx context.Context, id int64) (int64, error) {
	const query = `SELECT price FROM products WHERE id = $1;`

	var price int64
	err := r.pool.QueryRow(ctx, query, id).Scan(&price)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, &domain.InvalidProductError{ProductID: id}
	}
	if err != nil {
		return 0, err
	}
	return price, nil
}
