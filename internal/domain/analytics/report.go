package analytics

import "time"

// DateRange bounds a report by order creation date. Both ends are
// optional and inclusive; only the date portion of created_at is
// compared.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Summary counts distinct orders and sums their line totals.
type Summary struct {
	TotalOrders  int64
	TotalRevenue int64
}

// WeekBucket aggregates one ISO week (Monday start).
type WeekBucket struct {
	WeekStart  time.Time
	OrderCount int64
	Revenue    int64
}

// ProductSales aggregates quantity and revenue per (name, flavour).
type ProductSales struct {
	ProductName   string
	Flavour       *string
	TotalQuantity int64
	TotalRevenue  int64
}

// Report is the full analytics payload for one date range.
type Report struct {
	Summary       Summary
	OrdersPerWeek []WeekBucket
	TopProducts   []ProductSales
}
