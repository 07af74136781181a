package entity

import (
	"time"
)

// LineItem is the canonical shape of one purchased product entry within an
// order. SKU and Quantity are coerced to integers and Price to a float during
// normalization; malformed values degrade to zero values rather than failing
// the order.
type LineItem struct {
	ProductName       string  `json:"productName"`
	SKU               int64   `json:"sku"`
	Quantity          int64   `json:"quantity"`
	Price             float64 `json:"price"`
	FulfillmentStatus string  `json:"fulfillmentStatus"`
}

// Order represents one order webhook delivery. Orders are immutable once
// recorded; there is no update or cancel handling.
type Order struct {
	ID          int64      `json:"id"`
	CustomerID  *int64     `json:"customer_id"` // nil when the webhook carries no customer
	Email       string     `json:"email"`
	PurchasedAt time.Time  `json:"purchased_at"`
	TotalPrice  float64    `json:"total_price"`
	Currency    string     `json:"currency"`
	LineItems   []LineItem `json:"line_items"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// SKUSum returns the sum of the parsed SKU values across all line items.
// The counter accrues the numeric SKU value, not the purchase quantity.
func (o *Order) SKUSum() int64 {
	var sum int64
	for _, item := range o.LineItems {
		sum += item.SKU
	}

	return sum
}
