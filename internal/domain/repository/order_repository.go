package repository

import (
	"context"

	"skuledger/internal/domain/entity"
	"skuledger/internal/errors"
)

// ErrDuplicateOrder is returned when an order id already has a row, which
// happens when the webhook sender retries a delivery that already succeeded.
var ErrDuplicateOrder = errors.New("order already exists")

// OrderRepository persists order webhook deliveries. Recording the order is
// the sole gate before SKU accumulation proceeds.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
}
