// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Customer represents a shop customer created through the registration webhook.
// The ID is the external customer identifier assigned by the shop platform.
type Customer struct {
	ID               int64     `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Phone            string    `json:"phone"`
	Currency         string    `json:"currency"`
	State            string    `json:"state"`
	Note             string    `json:"note"`
	Tags             string    `json:"tags"`
	VerifiedEmail    bool      `json:"verified_email"`
	TaxExempt        bool      `json:"tax_exempt"`
	AcceptsMarketing bool      `json:"accepts_marketing"`
	OrdersCount      int64     `json:"orders_count"`
	TotalSpent       string    `json:"total_spent"`
	LastOrderID      *int64    `json:"last_order_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
