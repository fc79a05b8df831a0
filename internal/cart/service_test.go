package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sikawofie/shop-backend/internal/shop"
	pkgerrors "github.com/sikawofie/shop-backend/pkg/errors"
)

func newTestService(t *testing.T) (Service, *shop.State) {
	t.Helper()
	state := shop.NewState(shop.SeedCatalog())
	svc, err := NewService(state, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, state
}

func TestAddItemCreatesLineWithCopiedFields(t *testing.T) {
	svc, _ := newTestService(t)

	dto, err := svc.AddItem(context.Background(), AddItemInput{ProductID: "1", Size: "US 9"})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if len(dto.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(dto.Lines))
	}
	line := dto.Lines[0]
	if line.Name != "Gold Rush High-Tops" || line.Size != "US 9" || line.Quantity != 1 {
		t.Fatalf("unexpected line %+v", line)
	}
	if !line.Price.Equal(decimal.RequireFromString("150.00")) {
		t.Fatalf("unexpected price %s", line.Price)
	}
	if dto.IsOpen {
		t.Fatalf("adding must not open the cart")
	}
}

func TestAddItemRepeatedlyIncrements(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	var dto *CartDTO
	var err error
	for i := 0; i < 4; i++ {
		dto, err = svc.AddItem(ctx, AddItemInput{ProductID: "3", Size: "32"})
		if err != nil {
			t.Fatalf("AddItem: %v", err)
		}
	}
	if len(dto.Lines) != 1 {
		t.Fatalf("expected one accumulated line, got %d", len(dto.Lines))
	}
	if dto.Lines[0].Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", dto.Lines[0].Quantity)
	}
	if dto.ItemCount != 4 {
		t.Fatalf("expected item count 4, got %d", dto.ItemCount)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddItem(context.Background(), AddItemInput{ProductID: "nope", Size: "M"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestAddItemRejectsUnofferedSize(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddItem(context.Background(), AddItemInput{ProductID: "1", Size: "XXL"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestUpdateQuantityBelowOneIsExplicitlyRejected(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, AddItemInput{ProductID: "1", Size: "US 9"}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	_, err := svc.UpdateQuantity(ctx, UpdateQuantityInput{ProductID: "1", Size: "US 9", Quantity: 0})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}

	snapshot, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snapshot.Lines[0].Quantity != 1 {
		t.Fatalf("rejected update must leave quantity at 1, got %d", snapshot.Lines[0].Quantity)
	}
}

func TestUpdateQuantityReplacesAndMissIsNoop(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, AddItemInput{ProductID: "1", Size: "US 9"}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	dto, err := svc.UpdateQuantity(ctx, UpdateQuantityInput{ProductID: "1", Size: "US 9", Quantity: 5})
	if err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if dto.Lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", dto.Lines[0].Quantity)
	}

	dto, err = svc.UpdateQuantity(ctx, UpdateQuantityInput{ProductID: "1", Size: "US 10", Quantity: 2})
	if err != nil {
		t.Fatalf("UpdateQuantity miss: %v", err)
	}
	if len(dto.Lines) != 1 || dto.Lines[0].Quantity != 5 {
		t.Fatalf("missed update must not change the cart: %+v", dto.Lines)
	}
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, AddItemInput{ProductID: "1", Size: "US 9"}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	dto, err := svc.RemoveItem(ctx, RemoveItemInput{ProductID: "1", Size: "US 9"})
	if err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if len(dto.Lines) != 0 {
		t.Fatalf("expected empty cart")
	}

	if _, err := svc.RemoveItem(ctx, RemoveItemInput{ProductID: "1", Size: "US 9"}); err != nil {
		t.Fatalf("second remove must be a silent no-op, got %v", err)
	}
}

func TestSubtotalRecomputedPerSnapshot(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	svc.AddItem(ctx, AddItemInput{ProductID: "1", Size: "US 9"})
	svc.AddItem(ctx, AddItemInput{ProductID: "3", Size: "32"})
	dto, err := svc.UpdateQuantity(ctx, UpdateQuantityInput{ProductID: "3", Size: "32", Quantity: 2})
	if err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}

	want := decimal.RequireFromString("330.00")
	if !dto.Subtotal.Equal(want) {
		t.Fatalf("expected subtotal %s, got %s", want, dto.Subtotal)
	}
	if dto.ItemCount != 3 {
		t.Fatalf("expected item count 3, got %d", dto.ItemCount)
	}
}

func TestClearAndToggle(t *testing.T) {
	svc, state := newTestService(t)
	ctx := context.Background()

	svc.AddItem(ctx, AddItemInput{ProductID: "1", Size: "US 9"})
	dto, err := svc.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if len(dto.Lines) != 0 || !dto.Subtotal.IsZero() {
		t.Fatalf("expected empty cart, got %+v", dto)
	}

	dto, err = svc.Toggle(ctx, true)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !dto.IsOpen || !state.CartOpen() {
		t.Fatalf("expected cart open")
	}

	dto, _ = svc.Toggle(ctx, false)
	if dto.IsOpen {
		t.Fatalf("expected cart closed")
	}
}
