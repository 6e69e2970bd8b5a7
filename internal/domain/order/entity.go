package order

import "time"

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Order is a persisted customer order. Status only ever moves
// pending -> completed.
type Order struct {
	ID           int64
	CustomerName string
	Phone        string
	Address      string
	Note         *string
	Status       string
	CreatedAt    time.Time
}

// CartItem is one client-submitted (product, quantity) pair.
type CartItem struct {
	ProductID int64
	Quantity  int
}

// Item is a stored order line joined with its product's name and
// flavour. LineTotal was frozen at placement time.
type Item struct {
	ProductName string
	Flavour     *string
	Quantity    int
	LineTotal   int64
}

// WithItems is an order together with its lines, as read back for the
// admin listing and the notification email.
type WithItems struct {
	Order
	Items []Item
}

// Total sums the stored line totals.
func (w WithItems) Total() int64 {
	var total int64
	for _, it := range w.Items {
		total += it.LineTotal
	}
	return total
}
