package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the three tables if they do not exist yet, so a
// fresh database works without a separate migration step. Products are
// seeded by an out-of-band catalog process.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS products (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			flavour TEXT,
			pack_size INT NOT NULL DEFAULT 1,
			price BIGINT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		);

		CREATE TABLE IF NOT EXISTS orders (
			id BIGSERIAL PRIMARY KEY,
			customer_name TEXT NOT NULL,
			phone TEXT NOT NULL,
			address TEXT NOT NULL,
			note TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id BIGSERIAL PRIMARY KEY,
			order_id BIGINT NOT NULL REFERENCES orders(id),
			product_id BIGINT NOT NULL REFERENCES products(id),
			quantity INT NOT NULL,
			line_total BIGINT NOT NULL
		);
	`
	_, err := pool.Exec(ctx, stmt)
	return err
}
