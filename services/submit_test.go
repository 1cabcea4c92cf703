package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"legrazie-orders/models"
)

type fakeStore struct {
	id    int64
	err   error
	calls int
	last  models.CreateOrderInput
}

func (f *fakeStore) CreateOrder(ctx context.Context, in models.CreateOrderInput) (int64, error) {
	f.calls++
	f.last = in
	return f.id, f.err
}

func (f *fakeStore) ListRecentOrders(ctx context.Context) ([]models.Order, error) {
	return nil, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSubmitOrder_TableScenario(t *testing.T) {
	store := &fakeStore{id: 42}
	in := models.CreateOrderInput{
		OrderType:   models.OrderTypeTable,
		TableNumber: intPtr(4),
		Items:       testItems(),
		TotalPrice:  14.50,
	}

	sub, err := SubmitOrder(context.Background(), store, discardLogger(), in)
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}
	if store.calls != 1 {
		t.Errorf("store calls = %d, want exactly 1", store.calls)
	}
	if !sub.Saved || sub.OrderID != 42 {
		t.Errorf("sub = {saved: %v, id: %d}, want saved with id 42", sub.Saved, sub.OrderID)
	}
	if store.last.TotalPrice != 14.50 {
		t.Errorf("stored total = %v, want 14.50", store.last.TotalPrice)
	}
	if !strings.Contains(sub.Message, "tavolo 4") {
		t.Errorf("confirmation message missing 'tavolo 4': %q", sub.Message)
	}

	card := FormatOrderMessage(sub.OrderID, sub.Order, sub.SubmittedAt)
	if !strings.Contains(card, "Tavolo:* 4") || !strings.Contains(card, "14.50") {
		t.Errorf("order card missing table or total:\n%s", card)
	}
}

func TestSubmitOrder_RejectsWithoutStoreCall(t *testing.T) {
	tests := []struct {
		name string
		in   models.CreateOrderInput
	}{
		{
			name: "unset type",
			in:   models.CreateOrderInput{Items: testItems(), TotalPrice: 14.50},
		},
		{
			name: "table without number",
			in:   models.CreateOrderInput{OrderType: "table", Items: testItems(), TotalPrice: 14.50},
		},
		{
			name: "delivery without phone",
			in: models.CreateOrderInput{OrderType: "delivery", DeliveryAddress: strPtr("Via Roma"),
				DeliveryNumber: strPtr("12"), Items: testItems(), TotalPrice: 14.50},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{id: 1}
			_, err := SubmitOrder(context.Background(), store, discardLogger(), tt.in)
			if err == nil {
				t.Fatal("SubmitOrder accepted invalid input")
			}
			if store.calls != 0 {
				t.Errorf("store called %d times before validation, want 0", store.calls)
			}
		})
	}
}

func TestSubmitOrder_StoreFailureFallsBack(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	in := models.CreateOrderInput{
		OrderType:       models.OrderTypeDelivery,
		DeliveryAddress: strPtr("Via Roma"),
		DeliveryNumber:  strPtr("12"),
		DeliveryPhone:   strPtr("3331234567"),
		DeliveryTime:    intPtr(45),
		Items:           testItems(),
		TotalPrice:      14.50,
	}

	sub, err := SubmitOrder(context.Background(), store, discardLogger(), in)
	if err != nil {
		t.Fatalf("SubmitOrder must not fail on store error, got %v", err)
	}
	if sub.Saved {
		t.Error("saved = true after store failure")
	}
	if sub.OrderID <= 0 {
		t.Errorf("fallback id = %d, want positive timestamp id", sub.OrderID)
	}
	if store.calls != 1 {
		t.Errorf("store calls = %d, want exactly 1 (no retries)", store.calls)
	}
	if !strings.Contains(sub.Message, "45 minuti") {
		t.Errorf("confirmation message missing eta: %q", sub.Message)
	}
}

func TestSubmitOrder_NormalizesFieldsByType(t *testing.T) {
	store := &fakeStore{id: 7}
	in := models.CreateOrderInput{
		OrderType:       models.OrderTypeTable,
		TableNumber:     intPtr(2),
		DeliveryAddress: strPtr("Via Roma"),
		DeliveryPhone:   strPtr("3331234567"),
		Items:           testItems(),
		TotalPrice:      14.50,
	}
	if _, err := SubmitOrder(context.Background(), store, discardLogger(), in); err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}
	if store.last.DeliveryAddress != nil || store.last.DeliveryPhone != nil {
		t.Errorf("table order reached store with delivery fields: %+v", store.last)
	}
}

func TestConfirmationMessage(t *testing.T) {
	table := models.CreateOrderInput{OrderType: models.OrderTypeTable, TableNumber: intPtr(4)}
	if got := ConfirmationMessage(table); got != "Ordine confermato per il tavolo 4!" {
		t.Errorf("table message = %q", got)
	}

	delivery := models.CreateOrderInput{OrderType: models.OrderTypeDelivery, DeliveryTime: intPtr(30)}
	if got := ConfirmationMessage(delivery); got != "Ordine da asporto confermato! Consegna prevista tra 30 minuti." {
		t.Errorf("delivery message = %q", got)
	}

	noEta := models.CreateOrderInput{OrderType: models.OrderTypeDelivery}
	if got := ConfirmationMessage(noEta); got != "Ordine da asporto confermato!" {
		t.Errorf("delivery message without eta = %q", got)
	}
}
