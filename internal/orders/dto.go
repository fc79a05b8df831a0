package orders

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sikawofie/shop-backend/internal/cart"
	"github.com/sikawofie/shop-backend/internal/shop"
)

// OrderDTO is the immutable order payload returned to clients.
type OrderDTO struct {
	ID       string             `json:"id"`
	Lines    []cart.CartLineDTO `json:"lines"`
	Total    decimal.Decimal    `json:"total"`
	Status   string             `json:"status"`
	PlacedAt time.Time          `json:"placed_at"`
	Customer CustomerDTO        `json:"customer"`
}

// CustomerDTO echoes the contact fields captured at checkout.
type CustomerDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// NewOrderDTO builds the response payload from a stored order.
func NewOrderDTO(o shop.Order) *OrderDTO {
	lines := make([]cart.CartLineDTO, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, cart.CartLineDTO{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Category:  string(l.Category),
			Image:     l.Image,
			Size:      l.Size,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal(),
		})
	}
	return &OrderDTO{
		ID:       o.ID,
		Lines:    lines,
		Total:    o.Total,
		Status:   string(o.Status),
		PlacedAt: o.PlacedAt,
		Customer: CustomerDTO{
			Name:    o.Customer.Name,
			Email:   o.Customer.Email,
			Address: o.Customer.Address,
		},
	}
}
