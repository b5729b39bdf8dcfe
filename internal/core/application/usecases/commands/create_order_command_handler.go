package commands

import (
	"context"

	"logistics/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders are unassigned and not completed.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, latency.New(500*time.Millisecond))
//	cmd, _ := NewCreateOrderCommand(input)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	latency    Latency
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, latency Latency) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		latency:    latency,
	}
}

// Handle processes the order creation command.
// A duplicate identifier is rejected by the repository with errs.ErrValueIsInvalid.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.latency.Wait(ctx); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.Weight(), cmd.Destination(), cmd.Date(), cmd.Observations())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
