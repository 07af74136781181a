package repository

import (
	"context"
	"time"

	"skuledger/internal/domain/entity"
	"skuledger/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrCounterNotFound is returned by single-row reads when no counter row
	// exists for the user. Accumulation treats absence as "create", not as an
	// error, so it never sees this sentinel.
	ErrCounterNotFound = errors.New("sku counter not found")

	// ErrMultipleCounterRows is returned by single-row reads when more than one
	// row matches, mirroring the store's single-row contract.
	ErrMultipleCounterRows = errors.New("multiple sku counter rows matched")
)

// CounterRepository maintains the per-user SKU counters. Accumulate and
// DecrementOnce are single atomic store operations: concurrent webhook
// deliveries for the same user must not lose updates, so the increment happens
// inside the statement rather than as a read-then-write pair.
type CounterRepository interface {
	// Accumulate adds delta to the user's counter and stamps the last purchase
	// date, creating the row when absent. One call per line item.
	Accumulate(ctx context.Context, userID int64, delta int64, purchasedAt time.Time) error

	// FindByUserAndBot returns every counter row matching the (user, bot)
	// pair. An empty slice means no rows matched.
	FindByUserAndBot(ctx context.Context, userID, botID int64) ([]*entity.SKUCounter, error)

	// DecrementOnce decrements the row by exactly one, never below zero.
	// It reports false when the row was already at zero (or gone).
	DecrementOnce(ctx context.Context, id uuid.UUID) (bool, error)

	// FindOneByUser reads the user's single counter row. It returns
	// ErrCounterNotFound when absent and ErrMultipleCounterRows when the
	// single-row assumption is violated.
	FindOneByUser(ctx context.Context, userID int64) (*entity.SKUCounter, error)

	// SaveBotID upserts the bot id onto the user's counter row, creating the
	// row without a quantity when absent.
	SaveBotID(ctx context.Context, userID, botID int64) error
}
