package commands

import (
	"context"

	"logistics/internal/core/domain/services"
)

// AssignVehicleCommandHandler orchestrates an assignment.
// Looks up the order, then the vehicle, and lets services.AssignmentService
// update both. Both aggregates are written in the same unit of work, so a
// capacity failure leaves the store untouched.
//
// Example:
//
//	handler := NewAssignVehicleCommandHandler(uowFactory, latency)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("order or vehicle missing")
//	case errors.Is(err, errs.ErrCapacityExceeded):
//	    log.Println("vehicle is full")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignVehicleCommandHandler struct {
	uowFactory UoWFactory
	latency    Latency
	assigner   services.AssignmentService
}

// NewAssignVehicleCommandHandler creates a handler for assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignVehicleCommandHandler(uowFactory UoWFactory, latency Latency) AssignVehicleCommandHandler {
	return AssignVehicleCommandHandler{
		uowFactory: uowFactory,
		latency:    latency,
		assigner:   services.NewAssignmentService(),
	}
}

// Handle processes the assignment command.
// Returns errs.ErrObjectNotFound when the order or vehicle is missing and
// errs.ErrCapacityExceeded when the vehicle cannot carry the order.
func (h AssignVehicleCommandHandler) Handle(ctx context.Context, cmd AssignVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.latency.Wait(ctx); err != nil {
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

	if err = h.assigner.Assign(o, v); err != nil {
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
