// Package ports defines the contracts between the core and its adapters:
// repositories and unit of work for writes, readers for queries, the blob
// store used for persistence and the event bus.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates
// inside a unit of work.
type OrderRepository interface {
	// Add stores a new order at the end of the collection.
	// Returns errs.ErrValueIsInvalid when the identifier is already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces an existing order.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier.
	// Returns errs.ErrObjectNotFound when the order does not exist.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAll returns every order in insertion order.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
