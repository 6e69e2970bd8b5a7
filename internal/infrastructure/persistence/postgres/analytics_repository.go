package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/analytics"
)

type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

// rangeFilter builds the optional WHERE clause over the order's
// creation date. Bounds are inclusive and compare the date portion
// only.
func rangeFilter(r analytics.DateRange) (string, []any) {
	clauses := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if r.From != nil {
		args = append(args, *r.From)
		clauses = append(clauses, fmt.Sprintf("o.created_at::date >= $%d", len(args)))
	}
	if r.To != nil {
		args = append(args, *r.To)
		clauses = append(clauses, fmt.Sprintf("o.created_at::date <= $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

func (r *AnalyticsRepository) Summary(ctx context.Context, dr analytics.DateRange) (analytics.Summary, error) {
	where, args := rangeFilter(dr)
	query := fmt.Sprintf(`
		SELECT
			COUNT(DISTINCT o.id),
			COALESCE(SUM(oi.line_total), 0)::bigint
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		%s;
	`, where)

	var s analytics.Summary
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&s.TotalOrders, &s.TotalRevenue); err != nil {
		return analytics.Summary{}, err
	}
	return s, nil
}

// OrdersPerWeek buckets by date_trunc('week', ...), which starts weeks
// on ISO Monday. Newest week first, at most 8 buckets.
func (r *AnalyticsRepository) OrdersPerWeek(ctx context.Context, dr analytics.DateRange) ([]analytics.WeekBucket, error) {
	where, args := rangeFilter(dr)
	query := fmt.Sprintf(`
		SELECT
			date_trunc('week', o.created_at)::date AS week_start,
			COUNT(DISTINCT o.id),
			COALESCE(SUM(oi.line_total), 0)::bigint
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		%s
		GROUP BY week_start
		ORDER BY week_start DESC
		LIMIT 8;
	`, where)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buckets := make([]analytics.WeekBucket, 0)
	for rows.Next() {
		var b analytics.WeekBucket
		if err := rows.Scan(&b.WeekStart, &b.OrderCount, &b.Revenue); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

// TopProducts aggregates quantity and revenue per (name, flavour),
// highest quantity first, at most 10 entries. Name and flavour break
// quantity ties so the order stays stable.
func (r *AnalyticsRepository) TopProducts(ctx context.Context, dr analytics.DateRange) ([]analytics.ProductSales, error) {
	where, args := rangeFilter(dr)
	query := fmt.Sprintf(`
		SELECT
			p.name,
			p.flavour,
			SUM(oi.quantity)::bigint,
			SUM(oi.line_total)::bigint
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		%s
		GROUP BY p.name, p.flavour
		ORDER BY SUM(oi.quantity) DESC, p.name, p.flavour
		LIMIT 10;
	`, where)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]analytics.ProductSales, 0)
	for rows.Next() {
		var p analytics.ProductSales
		if err := rows.Scan(&p.ProductName, &p.Flavour, &p.TotalQuantity, &p.TotalRevenue); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
