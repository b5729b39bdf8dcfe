// Package memory is the Entity Store: the order and vehicle collections held
// in memory, mutated through units of work and persisted as whole JSON blobs
// through a ports.BlobStore after every commit.
//
// The store keeps a single writer at a time. A unit of work works on a copy
// of the collections and swaps it in on commit, so readers never observe a
// half-applied operation.
package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"logistics/internal/adapters/out/blobstore"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// Blob keys of the persisted collections.
const (
	OrdersKey   = "orders"
	VehiclesKey = "vehicles"
)

var (
	ErrStoreIsClosed = errors.New("store is closed")

	_ ports.OrderReader   = (*Store)(nil)
	_ ports.VehicleReader = (*Store)(nil)
)

type collections struct {
	orders   []OrderDTO
	vehicles []VehicleDTO
}

func (c collections) clone() collections {
	return collections{
		orders:   slices.Clone(c.orders),
		vehicles: slices.Clone(c.vehicles),
	}
}

// Store owns the collections for the lifetime of the process.
type Store struct {
	blobs ports.BlobStore

	// writer is a one-slot semaphore held by the active unit of work.
	writer chan struct{}

	mu     sync.RWMutex
	state  collections
	seeded bool
	closed bool
}

// Open loads both collections from blobs. When either key is missing, both
// keys are cleared and seed is installed and persisted instead.
func Open(ctx context.Context, blobs ports.BlobStore, seed Seed) (*Store, error) {
	if blobs == nil {
		return nil, errs.NewValueIsRequiredError("blob store")
	}

	s := &Store{
		blobs:  blobs,
		writer: make(chan struct{}, 1),
	}

	orders, hasOrders, err := blobstore.Lookup[[]OrderDTO](ctx, blobs, OrdersKey)
	if err != nil {
		return nil, err
	}
	vehicles, hasVehicles, err := blobstore.Lookup[[]VehicleDTO](ctx, blobs, VehiclesKey)
	if err != nil {
		return nil, err
	}

	if hasOrders && hasVehicles {
		s.state = collections{orders: orders, vehicles: vehicles}
	} else {
		if err := blobs.Delete(ctx, OrdersKey); err != nil {
			return nil, err
		}
		if err := blobs.Delete(ctx, VehiclesKey); err != nil {
			return nil, err
		}
		s.state = collections{
			orders:   slices.Clone(seed.Orders),
			vehicles: slices.Clone(seed.Vehicles),
		}
		s.seeded = true
	}

	if err := s.state.validate(); err != nil {
		return nil, err
	}

	if s.seeded {
		if err := s.persist(ctx, s.state, true, true); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Seeded reports whether Open installed the seed set.
func (s *Store) Seeded() bool {
	return s.seeded
}

// Flush persists both collections.
func (s *Store) Flush(ctx context.Context) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	return s.persist(ctx, s.snapshot(), true, true)
}

// Close flushes the collections and rejects further units of work. Closing
// a closed store is a no-op.
func (s *Store) Close(ctx context.Context) error {
	if s.isClosed() {
		return nil
	}
	if err := s.Flush(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

// ListOrders returns a copy of every order in insertion order.
func (s *Store) ListOrders(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ordersToDomain(s.snapshot().orders)
}

func (s *Store) FindOrder(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return findOrder(s.snapshot().orders, id)
}

// ListVehicles returns a copy of the fleet in seed order.
func (s *Store) ListVehicles(ctx context.Context) ([]*vehicle.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return vehiclesToDomain(s.snapshot().vehicles)
}

func (s *Store) FindVehicle(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return findVehicle(s.snapshot().vehicles, plate)
}

// snapshot returns the current collections. The slices are replaced, never
// mutated, on commit, so holding them after the lock is released is safe.
func (s *Store) snapshot() collections {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) swap(next collections) {
	s.mu.Lock()
	s.state = next
	s.mu.Unlock()
}

func (s *Store) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.writer <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	if s.isClosed() {
		s.release()
		return ErrStoreIsClosed
	}
	return nil
}

func (s *Store) release() {
	<-s.writer
}

func (s *Store) persist(ctx context.Context, c collections, orders, vehicles bool) error {
	if orders {
		if err := blobstore.Persist(ctx, s.blobs, OrdersKey, nonNil(c.orders)); err != nil {
			return fmt.Errorf("persist orders: %w", err)
		}
	}
	if vehicles {
		if err := blobstore.Persist(ctx, s.blobs, VehiclesKey, nonNil(c.vehicles)); err != nil {
			return fmt.Errorf("persist vehicles: %w", err)
		}
	}
	return nil
}

func (c collections) validate() error {
	if _, err := ordersToDomain(c.orders); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(OrdersKey, err)
	}
	if _, err := vehiclesToDomain(c.vehicles); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(VehiclesKey, err)
	}
	return nil
}

// nonNil makes empty collections encode as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func findOrder(dtos []OrderDTO, id kernel.ID) (*order.Order, error) {
	if i := indexOfOrder(dtos, id); i >= 0 {
		return orderToDomain(dtos[i])
	}
	return nil, errs.NewObjectNotFoundError("order", id.String())
}

func findVehicle(dtos []VehicleDTO, plate string) (*vehicle.Vehicle, error) {
	if i := indexOfVehicle(dtos, plate); i >= 0 {
		return vehicleToDomain(dtos[i])
	}
	return nil, errs.NewObjectNotFoundError("vehicle", plate)
}

func indexOfOrder(dtos []OrderDTO, id kernel.ID) int {
	return slices.IndexFunc(dtos, func(dto OrderDTO) bool { return dto.ID == id.String() })
}

func indexOfVehicle(dtos []VehicleDTO, plate string) int {
	return slices.IndexFunc(dtos, func(dto VehicleDTO) bool { return dto.Plate == plate })
}
