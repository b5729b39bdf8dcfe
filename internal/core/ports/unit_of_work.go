package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over both
// collections. Changes made through its repositories become visible and
// durable on Commit, and are discarded on Rollback.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts the transaction. It blocks until no other unit of work
	// is active.
	Begin(ctx context.Context) error

	// Commit persists the changed collections and publishes them to readers.
	// Returns error if no active transaction or persisting fails; in the
	// latter case nothing is published.
	Commit(ctx context.Context) error

	// Rollback discards the transaction. It is a no-op after Commit.
	Rollback(ctx context.Context) error

	// OrderRepository returns the OrderRepository bound to the transaction.
	OrderRepository() OrderRepository

	// VehicleRepository returns the VehicleRepository bound to the transaction.
	VehicleRepository() VehicleRepository
}
