package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// GetVehicleDetailsQueryHandler returns one vehicle.
// A missing vehicle yields errs.ErrObjectNotFound.
type GetVehicleDetailsQueryHandler struct {
	vehicles ports.VehicleReader
}

func NewGetVehicleDetailsQueryHandler(vehicles ports.VehicleReader) GetVehicleDetailsQueryHandler {
	return GetVehicleDetailsQueryHandler{vehicles: vehicles}
}

func (h GetVehicleDetailsQueryHandler) Handle(ctx context.Context, query GetVehicleDetailsQuery) (VehicleView, error) {
	if err := query.Validate(); err != nil {
		return VehicleView{}, err
	}

	v, err := h.vehicles.FindVehicle(ctx, query.Plate())
	if err != nil {
		return VehicleView{}, err
	}

	return newVehicleView(v), nil
}
