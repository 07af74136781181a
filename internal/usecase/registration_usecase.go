// Package usecase defines the application's use case interfaces and their
// input/output DTOs.
package usecase

import (
	"context"
)

// CustomerPayload is the inbound "customer created" webhook body. The field
// set is the superset across the shop platform's webhook versions; absent
// fields simply zero out.
type CustomerPayload struct {
	ID               int64  `json:"id"`
	Email            string `json:"email"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Phone            string `json:"phone"`
	Currency         string `json:"currency"`
	State            string `json:"state"`
	Note             string `json:"note"`
	Tags             string `json:"tags"`
	VerifiedEmail    bool   `json:"verified_email"`
	TaxExempt        bool   `json:"tax_exempt"`
	AcceptsMarketing bool   `json:"accepts_marketing"`
	OrdersCount      int64  `json:"orders_count"`
	TotalSpent       string `json:"total_spent"`
	LastOrderID      *int64 `json:"last_order_id"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

// RegistrationUsecase maps "customer created" webhook payloads into user rows.
// It has no accumulation logic and no cross-entity effects.
type RegistrationUsecase interface {
	RegisterCustomer(ctx context.Context, payload *CustomerPayload) error
}
