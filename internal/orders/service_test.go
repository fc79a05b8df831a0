package orders

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sikawofie/shop-backend/internal/shop"
	pkgerrors "github.com/sikawofie/shop-backend/pkg/errors"
)

func newTestService(t *testing.T) (*service, *shop.State) {
	t.Helper()
	state := shop.NewState(shop.SeedCatalog())
	svc, err := NewService(state, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc.(*service), state
}

func fillCart(t *testing.T, state *shop.State) {
	t.Helper()
	sneaker, ok := state.ProductByID("1")
	if !ok {
		t.Fatalf("seed product 1 missing")
	}
	jeans, ok := state.ProductByID("3")
	if !ok {
		t.Fatalf("seed product 3 missing")
	}
	state.AddToCart(sneaker, "US 9")
	state.AddToCart(jeans, "32")
	state.AddToCart(jeans, "32")
}

func validCustomer() CustomerInput {
	return CustomerInput{Name: "Kwame", Email: "kwame@example.com", Address: "12 Osu Lane, Accra"}
}

func TestPlaceOrderRecordsSnapshotAndClearsCart(t *testing.T) {
	svc, state := newTestService(t)
	fillCart(t, state)

	placedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return placedAt }

	order, err := svc.PlaceOrder(context.Background(), validCustomer())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if order.ID == "" {
		t.Fatalf("expected generated order id")
	}
	if order.Status != string(shop.OrderStatusPaid) {
		t.Fatalf("expected Paid, got %s", order.Status)
	}
	if !order.PlacedAt.Equal(placedAt) {
		t.Fatalf("unexpected timestamp %v", order.PlacedAt)
	}
	want := decimal.RequireFromString("330.00")
	if !order.Total.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, order.Total)
	}
	if len(order.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(order.Lines))
	}
	if len(state.CartLines()) != 0 {
		t.Fatalf("cart must be empty after checkout")
	}
}

func TestPlaceOrderRequiresNonEmptyCart(t *testing.T) {
	svc, state := newTestService(t)

	_, err := svc.PlaceOrder(context.Background(), validCustomer())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected STATE_CONFLICT, got %v", err)
	}
	if len(state.Orders()) != 0 {
		t.Fatalf("no order may be recorded for an empty cart")
	}
}

func TestPlaceOrderValidatesCustomer(t *testing.T) {
	svc, state := newTestService(t)
	fillCart(t, state)

	_, err := svc.PlaceOrder(context.Background(), CustomerInput{Name: "  ", Email: "", Address: ""})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
	if len(state.CartLines()) == 0 {
		t.Fatalf("rejected checkout must not clear the cart")
	}
}

func TestListIsNewestFirstAndImmuneToPriceEdits(t *testing.T) {
	svc, state := newTestService(t)
	ctx := context.Background()

	fillCart(t, state)
	first, err := svc.PlaceOrder(ctx, validCustomer())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	tee, _ := state.ProductByID("4")
	state.AddToCart(tee, "M")
	second, err := svc.PlaceOrder(ctx, validCustomer())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	// Reprice a product that appears in the first order.
	sneaker, _ := state.ProductByID("1")
	sneaker.Price = decimal.RequireFromString("999.00")
	state.ReplaceProduct(sneaker)

	history, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(history))
	}
	if history[0].ID != second.ID || history[1].ID != first.ID {
		t.Fatalf("expected newest first")
	}
	if !history[1].Total.Equal(decimal.RequireFromString("330.00")) {
		t.Fatalf("historical total changed after price edit: %s", history[1].Total)
	}
}
