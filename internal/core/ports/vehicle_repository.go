package ports

import (
	"context"

	"logistics/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for the fleet inside a
// unit of work. Vehicles are never added or removed at runtime.
type VehicleRepository interface {
	// Update replaces an existing vehicle.
	// Returns errs.ErrObjectNotFound when no vehicle has the plate.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle by plate.
	// Returns errs.ErrObjectNotFound when no vehicle has the plate.
	Get(ctx context.Context, plate string) (*vehicle.Vehicle, error)

	// GetAll returns the fleet in seed order.
	GetAll(ctx context.Context) ([]*vehicle.Vehicle, error)
}
