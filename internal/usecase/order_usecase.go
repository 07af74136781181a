package usecase

import (
	"context"
	"encoding/json"
)

// StringOrNumber accepts both JSON strings and JSON numbers, normalizing to
// the textual form. The shop platform is inconsistent about numeric fields
// (prices arrive as strings, quantities as numbers), so payload DTOs use this
// for every field that feeds numeric coercion.
type StringOrNumber string

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringOrNumber) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = StringOrNumber(v)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = StringOrNumber(n.String())

	return nil
}

// String returns the normalized textual form.
func (s StringOrNumber) String() string {
	return string(s)
}

// LineItemPayload is one raw purchased product entry within the order webhook.
type LineItemPayload struct {
	Name              string         `json:"name"`
	SKU               StringOrNumber `json:"sku"`
	Quantity          StringOrNumber `json:"quantity"`
	Price             StringOrNumber `json:"price"`
	FulfillmentStatus string         `json:"fulfillment_status"`
	ProductID         StringOrNumber `json:"product_id"`
}

// OrderCustomer is the embedded customer reference on an order webhook.
type OrderCustomer struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// OrderPayload is the inbound "order created" webhook body.
type OrderPayload struct {
	ID                int64             `json:"id"`
	Customer          *OrderCustomer    `json:"customer"`
	Email             string            `json:"email"`
	CreatedAt         string            `json:"created_at"`
	CurrentTotalPrice StringOrNumber    `json:"current_total_price"`
	Currency          string            `json:"currency"`
	LineItems         []LineItemPayload `json:"line_items"`
}

// ItemOutcome records what happened to one line item's accumulation. Failures
// are isolated per item: a failed item is reported here and logged, but never
// fails sibling items or the request.
type ItemOutcome struct {
	ProductName string `json:"productName"`
	SKU         int64  `json:"sku"`
	Accumulated bool   `json:"accumulated"`
	Reason      string `json:"reason,omitempty"`
}

// ProcessOrderOutput summarizes one processed order webhook.
type ProcessOrderOutput struct {
	OrderID    int64         `json:"orderId"`
	CustomerID *int64        `json:"customerId"`
	Outcomes   []ItemOutcome `json:"outcomes"`
}

// OrderUsecase runs the order-processing workflow: normalize line items
// (with best-effort catalog metadata), record the order, then accumulate the
// per-user SKU counter. Recording the order is the sole gate: if the insert
// fails the request fails and no accumulation is attempted.
type OrderUsecase interface {
	ProcessOrder(ctx context.Context, payload *OrderPayload) (*ProcessOrderOutput, error)
}
