package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
)

// OrderReader serves read-only snapshots of the order collection. The
// returned aggregates are copies; mutating them has no effect on the store.
type OrderReader interface {
	ListOrders(ctx context.Context) ([]*order.Order, error)
	FindOrder(ctx context.Context, id kernel.ID) (*order.Order, error)
}

// VehicleReader serves read-only snapshots of the fleet.
type VehicleReader interface {
	ListVehicles(ctx context.Context) ([]*vehicle.Vehicle, error)
	FindVehicle(ctx context.Context, plate string) (*vehicle.Vehicle, error)
}
