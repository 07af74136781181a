// Package repository defines the persistence interfaces the domain depends on.
package repository

import (
	"context"

	"skuledger/internal/domain/entity"
	"skuledger/internal/errors"
)

// ErrDuplicateCustomer is returned when a registration webhook is replayed for
// a customer id that already has a row.
var ErrDuplicateCustomer = errors.New("customer already exists")

// UserRepository persists customer registrations. Customers are written once
// per "customer created" event and never read back by this core.
type UserRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
}
