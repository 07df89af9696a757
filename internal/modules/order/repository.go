package order

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an order does not exist.
var ErrNotFound = errors.New("order not found")

// Repository defines data access for order records.
//
// UpsertBySessionID must be idempotent per checkout session id: the payment
// provider delivers webhooks at least once, so the same session may arrive
// twice and must still produce exactly one order.
type Repository interface {
	UpsertBySessionID(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	GetBySessionID(ctx context.Context, sessionID string) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	UpdateStatus(ctx context.Context, id string, status OrderStatus) error
}
