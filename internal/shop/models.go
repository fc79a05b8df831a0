package shop

import (
	"time"

	"github.com/shopspring/decimal"
)

// Review is attached to exactly one product. Reviews only enter the catalog
// through seed data; there is no submission operation.
type Review struct {
	ID      string
	User    string
	Rating  int
	Comment string
}

// Product is a catalog entry. The store owns the only authoritative copy;
// cart lines and order snapshots hold denormalized display fields instead of
// references.
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Category    Category
	Image       string
	Description string
	Sizes       []string
	Reviews     []Review
}

func (p Product) clone() Product {
	out := p
	out.Sizes = append([]string(nil), p.Sizes...)
	out.Reviews = append([]Review(nil), p.Reviews...)
	return out
}

// CartLine is one (product, size) pairing. The same product in two sizes is
// two distinct lines. Display fields are copied from the product at add time
// so later catalog edits do not rewrite the cart.
type CartLine struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Category  Category
	Image     string
	Size      string
	Quantity  int
}

// LineTotal is price times quantity for this line.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Customer holds the contact fields captured at checkout.
type Customer struct {
	Name    string
	Email   string
	Address string
}

// Order is the frozen result of a checkout. It never changes after creation.
type Order struct {
	ID       string
	Lines    []CartLine
	Total    decimal.Decimal
	Status   OrderStatus
	PlacedAt time.Time
	Customer Customer
}

func (o Order) clone() Order {
	out := o
	out.Lines = append([]CartLine(nil), o.Lines...)
	return out
}
