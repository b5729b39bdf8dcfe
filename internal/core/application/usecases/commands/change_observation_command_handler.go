package commands

import (
	"context"
)

// ChangeObservationCommandHandler updates observations on an existing order.
// A missing order yields errs.ErrObjectNotFound.
type ChangeObservationCommandHandler struct {
	uowFactory OrderUoWFactory
	latency    Latency
}

func NewChangeObservationCommandHandler(uowFactory OrderUoWFactory, latency Latency) ChangeObservationCommandHandler {
	return ChangeObservationCommandHandler{
		uowFactory: uowFactory,
		latency:    latency,
	}
}

func (h ChangeObservationCommandHandler) Handle(ctx context.Context, cmd ChangeObservationCommand) error {
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

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	aggregate.ChangeObservations(cmd.Text())

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
