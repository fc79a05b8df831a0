package cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/sikawofie/shop-backend/internal/shop"
	pkgerrors "github.com/sikawofie/shop-backend/pkg/errors"
	"github.com/sikawofie/shop-backend/pkg/logger"
)

// AddItemInput identifies the product and size to add. Quantity is always 1
// per call; repeating the call increments the existing line.
type AddItemInput struct {
	ProductID string
	Size      string
}

// UpdateQuantityInput replaces the quantity of one line exactly.
type UpdateQuantityInput struct {
	ProductID string
	Size      string
	Quantity  int
}

// RemoveItemInput identifies the line to delete.
type RemoveItemInput struct {
	ProductID string
	Size      string
}

// Service exposes the cart mutation surface. Every call returns the fresh
// snapshot so clients can re-render without a second read.
type Service interface {
	Snapshot(ctx context.Context) (*CartDTO, error)
	AddItem(ctx context.Context, input AddItemInput) (*CartDTO, error)
	UpdateQuantity(ctx context.Context, input UpdateQuantityInput) (*CartDTO, error)
	RemoveItem(ctx context.Context, input RemoveItemInput) (*CartDTO, error)
	Clear(ctx context.Context) (*CartDTO, error)
	Toggle(ctx context.Context, open bool) (*CartDTO, error)
}

type service struct {
	state *shop.State
	logg  *logger.Logger
}

// NewService builds the cart service on top of the shared shop state.
func NewService(state *shop.State, logg *logger.Logger) (Service, error) {
	if state == nil {
		return nil, fmt.Errorf("shop state required")
	}
	return &service{state: state, logg: logg}, nil
}

func (s *service) Snapshot(ctx context.Context) (*CartDTO, error) {
	return s.snapshot(), nil
}

// AddItem resolves the product from the live catalog and copies its display
// fields into the line. An unknown product id is an error: there is nothing
// to copy the line fields from.
func (s *service) AddItem(ctx context.Context, input AddItemInput) (*CartDTO, error) {
	product, ok := s.state.ProductByID(input.ProductID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	if !sizeOffered(product, input.Size) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "size not offered for this product").
			WithDetails(map[string]any{"size": input.Size, "offered": product.Sizes})
	}

	line := s.state.AddToCart(product, input.Size)

	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"product_id": input.ProductID,
			"size":       input.Size,
			"quantity":   line.Quantity,
		})
		s.logg.Info(ctx, "cart item added")
	}
	return s.snapshot(), nil
}

// UpdateQuantity rejects quantities below 1 with an explicit error so callers
// can tell "rejected" apart from "already at minimum". The underlying state
// never changes on rejection. An update against a line that does not exist is
// a no-op.
func (s *service) UpdateQuantity(ctx context.Context, input UpdateQuantityInput) (*CartDTO, error) {
	if input.Quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1").
			WithDetails(map[string]any{"quantity": input.Quantity})
	}

	s.state.SetQuantity(input.ProductID, input.Size, input.Quantity)
	return s.snapshot(), nil
}

func (s *service) RemoveItem(ctx context.Context, input RemoveItemInput) (*CartDTO, error) {
	if s.state.RemoveLine(input.ProductID, input.Size) && s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"product_id": input.ProductID,
			"size":       input.Size,
		})
		s.logg.Info(ctx, "cart item removed")
	}
	return s.snapshot(), nil
}

func (s *service) Clear(ctx context.Context) (*CartDTO, error) {
	s.state.ClearCart()
	return s.snapshot(), nil
}

func (s *service) Toggle(ctx context.Context, open bool) (*CartDTO, error) {
	s.state.SetCartOpen(open)
	return s.snapshot(), nil
}

func (s *service) snapshot() *CartDTO {
	return NewCartDTO(s.state.CartLines(), s.state.CartOpen())
}

func sizeOffered(p shop.Product, size string) bool {
	for _, offered := range p.Sizes {
		if strings.EqualFold(offered, size) {
			return true
		}
	}
	return false
}
