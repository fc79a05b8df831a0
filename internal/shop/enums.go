package shop

// Category is the fixed set of catalog categories.
type Category string

const (
	CategorySneakers Category = "Sneakers"
	CategoryTops     Category = "Tops"
	CategoryJeans    Category = "Jeans"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{CategorySneakers, CategoryTops, CategoryJeans}
}

func (c Category) Valid() bool {
	switch c {
	case CategorySneakers, CategoryTops, CategoryJeans:
		return true
	}
	return false
}

// OrderStatus models the order lifecycle. Checkout currently records Paid
// unconditionally; Pending and Failed exist so the shape of the data does not
// have to change when a real payment flow lands.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "Pending"
	OrderStatusPaid    OrderStatus = "Paid"
	OrderStatusFailed  OrderStatus = "Failed"
)
