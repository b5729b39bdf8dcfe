package memory

import (
	"context"
	"errors"

	"logistics/internal/core/ports"
)

var (
	// ErrNoActiveTransaction is returned by Commit and by repository calls
	// made outside Begin/Commit.
	ErrNoActiveTransaction = errors.New("no active transaction")

	_ ports.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)
	_ ports.UnitOfWork        = (*UnitOfWork)(nil)
)

// UnitOfWorkFactory creates units of work over a Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a fresh unit of work. Each command should use its own.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages changes on a private copy of the collections. Begin
// waits for the store's writer slot; Commit persists the collections that
// changed and publishes the copy; Rollback drops it.
type UnitOfWork struct {
	store *Store
	tx    *collections

	ordersDirty   bool
	vehiclesDirty bool
}

// Begin is a no-op when a transaction is already active.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	if err := uow.store.acquire(ctx); err != nil {
		return err
	}

	tx := uow.store.snapshot().clone()
	uow.tx = &tx
	uow.ordersDirty = false
	uow.vehiclesDirty = false
	return nil
}

// Commit persists first and publishes second. When persisting fails the
// store keeps its previous collections.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}
	defer uow.end()

	if !uow.ordersDirty && !uow.vehiclesDirty {
		return nil
	}

	if err := uow.store.persist(ctx, *uow.tx, uow.ordersDirty, uow.vehiclesDirty); err != nil {
		return err
	}
	uow.store.swap(*uow.tx)
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}
	uow.end()
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: uow}
}

func (uow *UnitOfWork) VehicleRepository() ports.VehicleRepository {
	return &vehicleRepository{uow: uow}
}

func (uow *UnitOfWork) end() {
	uow.tx = nil
	uow.ordersDirty = false
	uow.vehiclesDirty = false
	uow.store.release()
}

func (uow *UnitOfWork) active() (*collections, error) {
	if uow.tx == nil {
		return nil, ErrNoActiveTransaction
	}
	return uow.tx, nil
}
