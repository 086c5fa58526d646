package entity

// LineItem is a single purchasable position inside an order request.
// It has no identity of its own beyond its position in the order.
type LineItem struct {
	VariantID int64
	Quantity  int
	Title     string
	UnitPrice float64
}
