package service

import (
	"context"

	"jewelstore/internal/model"
)

// DefaultListLimit caps product listings when the caller does not supply a
// limit.
const DefaultListLimit = 50

// CatalogueService answers product listing and lookup queries, degrading to
// the seeded fallback catalogue when the document store misbehaves.
type CatalogueService interface {
	// List retrieves products, optionally filtered by category, capped at
	// limit.
	List(ctx context.Context, category string, limit int) ([]model.Product, error)

	// Get retrieves a single product by id, which may be a store identifier
	// or a seeded fallback id.
	Get(ctx context.Context, id string) (*model.Product, error)
}

// CheckoutService prices a cart, persists the resulting order best-effort,
// and returns a receipt.
type CheckoutService interface {
	Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutReceipt, error)
}
