package domain

import "time"

// Cart holds a user's pending items until checkout converts them into an
// order and deletes the cart in the same transaction.
type Cart struct {
	ID          uint
	UserID      string
	TotalAmount float64
	Items       []CartItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CartItem struct {
	ID       uint
	CartID   uint
	Name     string
	SKU      string
	Quantity int
	Price    float64
}

// LineItems maps cart items into order line items for the orderDetails
// encoding.
func (c Cart) LineItems() []LineItem {
	items := make([]LineItem, len(c.Items))
	for i, it := range c.Items {
		items[i] = LineItem{
			Name:     it.Name,
			SKU:      it.SKU,
			Quantity: float64(it.Quantity),
			Extra:    map[string]any{"price": it.Price},
		}
	}
	return items
}
