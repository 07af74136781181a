package entity

import (
	"time"

	"github.com/google/uuid"
)

// SKUCounter is the per-user accumulating balance derived from order line
// items. Quantity is nullable: a row created by a bot-id save carries no
// quantity until the first order accrues one. A nil quantity is treated as
// eligible by the status check (default-open).
type SKUCounter struct {
	ID               uuid.UUID  `json:"id"`
	UserID           int64      `json:"user_id"`
	BotID            *int64     `json:"bot_id"`
	SKUQuantity      *int64     `json:"sku_quantity"`
	LastPurchaseDate *time.Time `json:"last_purchase_date"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Eligible reports whether the counter still grants access: an unset quantity
// is open by default, zero is exhausted.
func (c *SKUCounter) Eligible() bool {
	return c.SKUQuantity == nil || *c.SKUQuantity > 0
}
