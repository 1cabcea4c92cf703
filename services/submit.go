package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"legrazie-orders/models"
)

// OrderStore is the remote persistence side of a submission.
type OrderStore interface {
	CreateOrder(ctx context.Context, in models.CreateOrderInput) (int64, error)
	ListRecentOrders(ctx context.Context) ([]models.Order, error)
}

// PgOrderStore backs OrderStore with the shared Postgres pool.
type PgOrderStore struct{}

func (PgOrderStore) CreateOrder(ctx context.Context, in models.CreateOrderInput) (int64, error) {
	return CreateOrder(ctx, in)
}

func (PgOrderStore) ListRecentOrders(ctx context.Context) ([]models.Order, error) {
	return ListRecentOrders(ctx)
}

// Submission is the outcome of one order submission. Saved reports whether
// the store accepted the order; when it did not, OrderID is a locally
// generated timestamp id and the order exists only in the WhatsApp message.
type Submission struct {
	OrderID     int64
	Saved       bool
	Message     string
	Order       models.CreateOrderInput
	SubmittedAt time.Time
}

// SubmitOrder validates the order, attempts the store call exactly once, and
// never lets a store failure block the flow: on error it falls back to a
// timestamp-based id so the user can still notify the restaurant.
func SubmitOrder(ctx context.Context, store OrderStore, log *slog.Logger, in models.CreateOrderInput) (*Submission, error) {
	if err := ValidateCreateOrder(&in); err != nil {
		return nil, err
	}
	normalizeOrderInput(&in)

	sub := &Submission{Order: in, SubmittedAt: time.Now()}

	id, err := store.CreateOrder(ctx, in)
	if err != nil {
		log.Warn("order not saved, falling back to local id",
			"error", err.Error(), "order_type", in.OrderType)
		sub.OrderID = time.Now().UnixMilli()
		sub.Saved = false
	} else {
		sub.OrderID = id
		sub.Saved = true
	}

	sub.Message = ConfirmationMessage(in)
	return sub, nil
}

// ConfirmationMessage is the Italian confirmation shown to the user.
func ConfirmationMessage(in models.CreateOrderInput) string {
	if in.OrderType == models.OrderTypeTable && in.TableNumber != nil {
		return fmt.Sprintf("Ordine confermato per il tavolo %d!", *in.TableNumber)
	}
	if in.DeliveryTime != nil {
		return fmt.Sprintf("Ordine da asporto confermato! Consegna prevista tra %d minuti.", *in.DeliveryTime)
	}
	return "Ordine da asporto confermato!"
}
