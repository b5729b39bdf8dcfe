package commands

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/events"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler completes a delivery and announces it.
//
// The order must exist and reference a vehicle that still exists; otherwise
// errs.ErrObjectNotFound is returned. On success the order's weight is
// released on the vehicle, both aggregates are committed, and a
// events.DeliveryCompleted event is published on events.Topic. Publishing
// happens after the commit; a publish failure is logged and does not undo
// the completion.
//
// Example:
//
//	handler := NewCompleteDeliveryCommandHandler(uowFactory, bus, logger)
//	cmd, _ := NewCompleteDeliveryCommand(orderID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	assigner   services.AssignmentService
	logger     *slog.Logger
	now        func() time.Time
}

func NewCompleteDeliveryCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		assigner:   services.NewAssignmentService(),
		logger:     logger.With("component", "CompleteDeliveryCommandHandler"),
		now:        time.Now,
	}
}

func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	plate, assigned := o.VehiclePlate()
	if !assigned {
		return errs.NewObjectNotFoundErrorWithCause("vehicle", cmd.OrderID().String(), order.ErrOrderIsNotAssigned)
	}

	v, err := vehicleRepo.Get(ctx, plate)
	if err != nil {
		return err
	}

	if err = h.assigner.Complete(o, v); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, v); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	evt := events.NewDeliveryCompleted(o.ID().String(), v.Plate(), h.now())
	if err = h.publisher.Publish(ctx, events.Topic, evt); err != nil {
		h.logger.Warn("Failed to publish delivery event", "orderId", evt.OrderID, "error", err)
	}

	return nil
}
