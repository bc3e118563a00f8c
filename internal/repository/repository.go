package repository

import (
	"context"

	"jewelstore/internal/model"
)

// Document store collection names. By convention the collection is the
// lowercase of the record type it holds.
const (
	ProductCollection = "product"
	OrderCollection   = "order"
)

// ObjectIDHexLen is the length of a document store identifier in hex form.
// Anything else (e.g. the seeded "seed-<n>" ids) cannot refer to a persisted
// record.
const ObjectIDHexLen = 24

// ProductRepository defines read access to the product collection.
//
// Every method returns model.ErrGatewayUnavailable (possibly wrapped) when
// the store was never connected, and GetByID returns model.ErrProductNotFound
// for a well-formed id with no matching document. Callers decide whether an
// error means "fall back" or "propagate".
type ProductRepository interface {
	// Query retrieves products, optionally filtered by category, capped at
	// limit.
	Query(ctx context.Context, category string, limit int) ([]model.Product, error)

	// GetByID retrieves a single product by its 24-character hex id.
	GetByID(ctx context.Context, hexID string) (*model.Product, error)

	// GetByIDs retrieves products matching any of the given hex ids. Ids that
	// do not parse as store identifiers are ignored.
	GetByIDs(ctx context.Context, hexIDs []string) ([]model.Product, error)
}

// OrderRepository defines write access to the order collection.
type OrderRepository interface {
	// Create persists an order and returns the store-assigned id.
	Create(ctx context.Context, order *model.Order) (string, error)
}
