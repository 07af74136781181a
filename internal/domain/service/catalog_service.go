// Package service defines interfaces for external collaborators of the domain.
package service

import (
	"context"

	"skuledger/internal/domain/entity"
)

// ProductCatalog fetches descriptive product metadata from the shop platform.
//
// GetProduct is strictly best-effort: on any transport or API failure it
// returns (nil, nil) so that callers treat absence as "no metadata", never as
// a processing failure.
type ProductCatalog interface {
	GetProduct(ctx context.Context, productID int64) (*entity.Product, error)
}
