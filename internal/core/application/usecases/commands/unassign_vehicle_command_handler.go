package commands

import (
	"context"

	"logistics/internal/core/domain/services"
)

// UnassignVehicleCommandHandler clears an order's vehicle and credits the
// named vehicle in one unit of work. The credit is unconditional, including
// for orders that were already completed.
type UnassignVehicleCommandHandler struct {
	uowFactory UoWFactory
	assigner   services.AssignmentService
}

func NewUnassignVehicleCommandHandler(uowFactory UoWFactory) UnassignVehicleCommandHandler {
	return UnassignVehicleCommandHandler{
		uowFactory: uowFactory,
		assigner:   services.NewAssignmentService(),
	}
}

func (h UnassignVehicleCommandHandler) Handle(ctx context.Context, cmd UnassignVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	vehicleRepo := uow.VehicleRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	v, err := vehicleRepo.Get(ctx, cmd.Plate())
	if err != nil {
		return err
	}

	if err = h.assigner.Unassign(o, v); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
