package repository

import (
	"context"

	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/analytics"
	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/catalog"
	"github.com/ChinmayKambali/cupcakesandcrumbsco/internal/domain/order"
)

type ProductRepository interface {
	// ListActive returns active products ordered by id.
	ListActive(ctx context.Context) ([]catalog.Product, error)
	// PriceByID returns the current price, or *order.InvalidProductError
	// when the id is not in the catalog.
	PriceByID(ctx context.Context, id int64) (int64, error)
}

type OrderRepository interface {
	// Create inserts the order and all its lines in one transaction,
	// pricing each line from the catalog inside that transaction. A
	// missing product id fails the whole insert with
	// *order.InvalidProductError.
	Create(ctx context.Context, customer order.CustomerInfo, cart []order.CartItem) (int64, error)
	// ListPending returns pending orders newest-first with their lines.
	ListPending(ctx context.Context) ([]order.WithItems, error)
	// Complete marks the order completed. Zero affected rows is not an
	// error.
	Complete(ctx context.Context, orderID int64) error
	// FindDetail returns the order with its lines, or nil when absent.
	FindDetail(ctx context.Context, orderID int64) (*order.WithItems, error)
}

type AnalyticsRepository interface {
	Summary(ctx context.Context, r analytics.DateRange) (analytics.Summary, error)
	OrdersPerWeek(ctx context.Context, r analytics.DateRange) ([]analytics.WeekBucket, error)
	TopProducts(ctx context.Context, r analytics.DateRange) ([]analytics.ProductSales, error)
}
