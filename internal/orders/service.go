package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sikawofie/shop-backend/internal/shop"
	pkgerrors "github.com/sikawofie/shop-backend/pkg/errors"
	"github.com/sikawofie/shop-backend/pkg/logger"
)

// CustomerInput carries the checkout contact fields.
type CustomerInput struct {
	Name    string
	Email   string
	Address string
}

// Service executes checkout and exposes the order history.
type Service interface {
	PlaceOrder(ctx context.Context, customer CustomerInput) (*OrderDTO, error)
	List(ctx context.Context) ([]OrderDTO, error)
}

type service struct {
	state *shop.State
	logg  *logger.Logger
	now   func() time.Time
}

// NewService builds the checkout service on top of the shared shop state.
func NewService(state *shop.State, logg *logger.Logger) (Service, error) {
	if state == nil {
		return nil, fmt.Errorf("shop state required")
	}
	return &service{
		state: state,
		logg:  logg,
		now:   func() time.Time { return time.Now().UTC() },
	}, nil
}

// PlaceOrder freezes the cart into an order. The id, timestamp, and Paid
// status are synthesized here; the append-and-clear itself happens inside the
// state under one lock. The recorded total comes from the cart snapshot, so
// later catalog price edits never rewrite history.
func (s *service) PlaceOrder(ctx context.Context, customer CustomerInput) (*OrderDTO, error) {
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}

	order, ok := s.state.PlaceOrder(uuid.NewString(), s.now(), shop.Customer{
		Name:    strings.TrimSpace(customer.Name),
		Email:   strings.TrimSpace(customer.Email),
		Address: strings.TrimSpace(customer.Address),
	})
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}

	if s.logg != nil {
		ctx = s.logg.WithOrderID(ctx, order.ID)
		ctx = s.logg.WithFields(ctx, map[string]any{
			"total": order.Total.String(),
			"lines": len(order.Lines),
		})
		s.logg.Info(ctx, "order placed")
	}
	return NewOrderDTO(order), nil
}

func (s *service) List(ctx context.Context) ([]OrderDTO, error) {
	history := s.state.Orders()
	out := make([]OrderDTO, 0, len(history))
	for _, o := range history {
		out = append(out, *NewOrderDTO(o))
	}
	return out, nil
}

func validateCustomer(customer CustomerInput) error {
	details := map[string]string{}
	if strings.TrimSpace(customer.Name) == "" {
		details["name"] = "is required"
	}
	if strings.TrimSpace(customer.Email) == "" {
		details["email"] = "is required"
	}
	if strings.TrimSpace(customer.Address) == "" {
		details["address"] = "is required"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid customer").WithDetails(details)
	}
	return nil
}
