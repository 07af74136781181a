package usecase

import (
	"context"
	"time"

	"skuledger/internal/errors"

	"github.com/google/uuid"
)

// ErrNoCounterRows is returned by ConsumeCount when no counter row matches the
// (user, bot) pair. The handler maps it to the endpoint's 404 contract.
var ErrNoCounterRows = errors.New("no records found for this user ID and bot ID")

// ConsumeCountInput is the /count request body. All fields are required;
// pointers distinguish "absent" from zero values.
type ConsumeCountInput struct {
	RequestCount *int64 `json:"requestCount" validate:"required"`
	UserID       *int64 `json:"userId" validate:"required"`
	BotID        *int64 `json:"botId" validate:"required"`
}

// DecrementOutcome records the result for one matched counter row. Applied is
// false when the row was already at zero ("no decrement applied") or when its
// update failed.
type DecrementOutcome struct {
	CounterID uuid.UUID `json:"counterId"`
	Applied   bool      `json:"applied"`
	Reason    string    `json:"reason,omitempty"`
}

// ConsumeCountOutput summarizes one count consumption call.
type ConsumeCountOutput struct {
	RequestCount int64              `json:"requestCount"`
	Outcomes     []DecrementOutcome `json:"outcomes"`
}

// CounterUserData is the raw counter view returned by the status check.
type CounterUserData struct {
	UserID           int64      `json:"userId"`
	SKUQuantity      *int64     `json:"skuQuantity"`
	LastPurchaseDate *time.Time `json:"lastPurchaseDate"`
	BotID            *int64     `json:"botId"`
}

// CounterStatus is the status-check view model. ShowButton is true when the
// quantity is positive or unset (absence of a value is treated as
// eligibility, a deliberate default-open policy).
type CounterStatus struct {
	ShowButton bool            `json:"showButton"`
	UserData   CounterUserData `json:"userData"`
}

// CounterUsecase covers the external consumer's operations on the SKU
// counter: decrement-on-use, the read-only status check, and saving the bot
// association.
type CounterUsecase interface {
	// ConsumeCount decrements every counter row matching the (user, bot) pair
	// by one, concurrently. Rows at zero are left untouched; per-row update
	// failures are logged and reported in the outcome set without failing the
	// call. Returns ErrNoCounterRows when nothing matches.
	ConsumeCount(ctx context.Context, input *ConsumeCountInput) (*ConsumeCountOutput, error)

	// SaveBotID upserts the bot id onto the user's counter row.
	SaveBotID(ctx context.Context, userID, botID int64) error

	// CheckQuantity reads the user's single counter row and derives the
	// eligibility view.
	CheckQuantity(ctx context.Context, userID int64) (*CounterStatus, error)
}
