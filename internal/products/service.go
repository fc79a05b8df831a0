package products

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sikawofie/shop-backend/internal/shop"
	pkgerrors "github.com/sikawofie/shop-backend/pkg/errors"
	"github.com/sikawofie/shop-backend/pkg/logger"
)

// ListFilters describe the browse filter knobs. All of them are optional and
// combine with AND semantics.
type ListFilters struct {
	Category *shop.Category
	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal
	Query    string
}

// ProductInput carries the admin-editable fields of a product. Reviews are
// not part of it; they only exist as seed data.
type ProductInput struct {
	Name        string
	Price       decimal.Decimal
	Category    shop.Category
	Image       string
	Description string
	Sizes       []string
}

// Service exposes catalog reads and the admin mutation surface.
type Service interface {
	List(ctx context.Context, filters ListFilters) ([]ProductDTO, error)
	Get(ctx context.Context, id string) (*ProductDTO, error)
	Create(ctx context.Context, input ProductInput) (*ProductDTO, error)
	Update(ctx context.Context, id string, input ProductInput) (*ProductDTO, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	state *shop.State
	logg  *logger.Logger
}

// NewService builds the catalog service on top of the shared shop state.
func NewService(state *shop.State, logg *logger.Logger) (Service, error) {
	if state == nil {
		return nil, fmt.Errorf("shop state required")
	}
	return &service{state: state, logg: logg}, nil
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]ProductDTO, error) {
	query := strings.ToLower(strings.TrimSpace(filters.Query))

	out := []ProductDTO{}
	for _, p := range s.state.Catalog() {
		if filters.Category != nil && p.Category != *filters.Category {
			continue
		}
		if filters.PriceMin != nil && p.Price.LessThan(*filters.PriceMin) {
			continue
		}
		if filters.PriceMax != nil && p.Price.GreaterThan(*filters.PriceMax) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		out = append(out, *NewProductDTO(p))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id string) (*ProductDTO, error) {
	p, ok := s.state.ProductByID(id)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return NewProductDTO(p), nil
}

func (s *service) Create(ctx context.Context, input ProductInput) (*ProductDTO, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := shop.Product{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(input.Name),
		Price:       input.Price,
		Category:    input.Category,
		Image:       input.Image,
		Description: input.Description,
		Sizes:       append([]string{}, input.Sizes...),
	}
	s.state.AddProduct(product)

	if s.logg != nil {
		ctx = s.logg.WithProductID(ctx, product.ID)
		s.logg.Info(ctx, "product created")
	}
	return NewProductDTO(product), nil
}

func (s *service) Update(ctx context.Context, id string, input ProductInput) (*ProductDTO, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	existing, ok := s.state.ProductByID(id)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	// Reviews ride along unchanged; the admin form does not edit them.
	updated := shop.Product{
		ID:          id,
		Name:        strings.TrimSpace(input.Name),
		Price:       input.Price,
		Category:    input.Category,
		Image:       input.Image,
		Description: input.Description,
		Sizes:       append([]string{}, input.Sizes...),
		Reviews:     existing.Reviews,
	}
	if !s.state.ReplaceProduct(updated) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	if s.logg != nil {
		ctx = s.logg.WithProductID(ctx, id)
		s.logg.Info(ctx, "product updated")
	}
	return NewProductDTO(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if !s.state.RemoveProduct(id) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	if s.logg != nil {
		ctx = s.logg.WithProductID(ctx, id)
		s.logg.Info(ctx, "product deleted")
	}
	return nil
}

func validateProductInput(input ProductInput) error {
	details := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		details["name"] = "is required"
	}
	if input.Price.IsNegative() {
		details["price"] = "must be non-negative"
	}
	if !input.Category.Valid() {
		details["category"] = "must be one of Sneakers, Tops, Jeans"
	}
	if len(input.Sizes) == 0 {
		details["sizes"] = "at least one size is required"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid product").WithDetails(details)
	}
	return nil
}
