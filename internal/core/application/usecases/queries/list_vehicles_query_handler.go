package queries

import (
	"context"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// ListVehiclesQueryHandler returns the fleet with favourite vehicles first.
// Order inside each group follows the seed order.
type ListVehiclesQueryHandler struct {
	vehicles ports.VehicleReader
	latency  Latency
}

func NewListVehiclesQueryHandler(vehicles ports.VehicleReader, latency Latency) ListVehiclesQueryHandler {
	return ListVehiclesQueryHandler{vehicles: vehicles, latency: latency}
}

func (h ListVehiclesQueryHandler) Handle(ctx context.Context, query ListVehiclesQuery) ([]VehicleView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.latency.Wait(ctx); err != nil {
		return nil, err
	}

	all, err := h.vehicles.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}

	sorted := services.FavouritesFirst(all)
	views := make([]VehicleView, 0, len(sorted))
	for _, v := range sorted {
		views = append(views, newVehicleView(v))
	}
	return views, nil
}
