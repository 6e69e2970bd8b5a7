package catalog

// Product is a purchasable catalog entry. Price is in whole rupees;
// it is copied into order lines at placement time and never re-read
// for existing orders.
type Product struct {
	ID       int64
	Name     string
	Flavour  *string
	PackSize int
	Price    int64
	IsActive bool
}
