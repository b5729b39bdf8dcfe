package commands

import (
	"context"
)

// ToggleFavouriteCommandHandler flips the favourite flag of a vehicle and
// reports the new value.
type ToggleFavouriteCommandHandler struct {
	uowFactory VehicleUoWFactory
	latency    Latency
}

func NewToggleFavouriteCommandHandler(uowFactory VehicleUoWFactory, latency Latency) ToggleFavouriteCommandHandler {
	return ToggleFavouriteCommandHandler{
		uowFactory: uowFactory,
		latency:    latency,
	}
}

// Handle returns the favourite flag after the toggle.
// A missing vehicle yields errs.ErrObjectNotFound.
func (h ToggleFavouriteCommandHandler) Handle(ctx context.Context, cmd ToggleFavouriteCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	if err := h.latency.Wait(ctx); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()

	v, err := vehicleRepo.Get(ctx, cmd.Plate())
	if err != nil {
		return false, err
	}

	favourite := v.ToggleFavourite()

	if err = vehicleRepo.Update(ctx, v); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return favourite, nil
}
