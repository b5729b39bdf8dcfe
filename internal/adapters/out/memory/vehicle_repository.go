package memory

import (
	"context"

	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"
)

type vehicleRepository struct {
	uow *UnitOfWork
}

func (r *vehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	tx, err := r.uow.active()
	if err != nil {
		return err
	}

	i := indexOfVehicle(tx.vehicles, aggregate.Plate())
	if i < 0 {
		return errs.NewObjectNotFoundError("vehicle", aggregate.Plate())
	}

	tx.vehicles[i] = vehicleFromDomain(aggregate)
	r.uow.vehiclesDirty = true
	return nil
}

func (r *vehicleRepository) Get(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tx, err := r.uow.active()
	if err != nil {
		return nil, err
	}
	return findVehicle(tx.vehicles, plate)
}

func (r *vehicleRepository) GetAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tx, err := r.uow.active()
	if err != nil {
		return nil, err
	}
	return vehiclesToDomain(tx.vehicles)
}
