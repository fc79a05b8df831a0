// Package shop holds the in-memory state for one storefront session: the
// product catalog, the active cart, and the placed-order history. Every
// mutation goes through a method on State; nothing else writes the fields.
//
// The original storefront kept this state inside a single UI thread. Served
// over HTTP the single-actor assumption no longer holds (two tabs are two
// clients), so State carries its own lock and PlaceOrder performs the
// order-append and cart-clear under one acquisition.
package shop

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

type State struct {
	mu       sync.RWMutex
	products []Product
	cart     []CartLine
	orders   []Order
	cartOpen bool
}

// NewState builds a State primed with the given catalog. The seed is copied;
// callers cannot alias into the store afterwards.
func NewState(seed []Product) *State {
	s := &State{products: make([]Product, 0, len(seed))}
	for _, p := range seed {
		s.products = append(s.products, p.clone())
	}
	return s
}

// Catalog returns a snapshot copy of every product.
func (s *State) Catalog() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p.clone())
	}
	return out
}

// ProductByID returns a copy of the matching product.
func (s *State) ProductByID(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p.clone(), true
		}
	}
	return Product{}, false
}

// AddProduct appends a fully formed product to the catalog.
func (s *State) AddProduct(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p.clone())
}

// ReplaceProduct swaps the catalog entry with a matching ID in place,
// preserving catalog order. Returns false when no entry matches.
func (s *State) ReplaceProduct(p Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p.clone()
			return true
		}
	}
	return false
}

// RemoveProduct deletes the matching catalog entry. Existing cart lines and
// order snapshots that copied the product's fields are left untouched.
func (s *State) RemoveProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}

// CartLines returns a snapshot copy of the active cart.
func (s *State) CartLines() []CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]CartLine(nil), s.cart...)
}

// CartSubtotal recomputes the cart total from the live lines.
func (s *State) CartSubtotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return subtotal(s.cart)
}

func subtotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// AddToCart increments the quantity of the (product, size) line if one
// exists, otherwise appends a new line with quantity 1 holding a copy of the
// product's display fields. Cart visibility is not touched; opening the
// drawer is the caller's separate concern.
func (s *State) AddToCart(p Product, size string) CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].ProductID == p.ID && s.cart[i].Size == size {
			s.cart[i].Quantity++
			return s.cart[i]
		}
	}
	line := CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Category:  p.Category,
		Image:     p.Image,
		Size:      size,
		Quantity:  1,
	}
	s.cart = append(s.cart, line)
	return line
}

// SetQuantity replaces the quantity of the matching line. Quantities below 1
// never change state; the cart line floor is 1. Returns true only when a line
// was updated.
func (s *State) SetQuantity(productID, size string, quantity int) bool {
	if quantity < 1 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].ProductID == productID && s.cart[i].Size == size {
			s.cart[i].Quantity = quantity
			return true
		}
	}
	return false
}

// RemoveLine deletes the matching cart line, no-op when absent.
func (s *State) RemoveLine(productID, size string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].ProductID == productID && s.cart[i].Size == size {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return true
		}
	}
	return false
}

// ClearCart empties the cart unconditionally.
func (s *State) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// CartOpen reports the drawer visibility flag.
func (s *State) CartOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartOpen
}

// SetCartOpen sets the drawer visibility flag. Pure UI state.
func (s *State) SetCartOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartOpen = open
}

// PlaceOrder freezes the current cart into an order and clears the cart under
// a single lock acquisition, so no reader can observe the order recorded
// while the cart still holds the same items. The total is computed from the
// snapshot, not from live catalog prices. Returns false when the cart is
// empty, in which case nothing changes.
func (s *State) PlaceOrder(id string, placedAt time.Time, customer Customer) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.cart) == 0 {
		return Order{}, false
	}
	order := Order{
		ID:       id,
		Lines:    append([]CartLine(nil), s.cart...),
		Total:    subtotal(s.cart),
		Status:   OrderStatusPaid,
		PlacedAt: placedAt,
		Customer: customer,
	}
	s.orders = append([]Order{order}, s.orders...)
	s.cart = nil
	return order.clone(), true
}

// Orders returns the order history, newest first.
func (s *State) Orders() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o.clone())
	}
	return out
}
