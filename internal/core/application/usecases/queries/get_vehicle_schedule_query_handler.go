package queries

import (
	"context"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// GetVehicleScheduleQueryHandler returns a vehicle's stops for one day,
// nearest to the depot first. It does not check that the vehicle exists; an
// unknown plate simply has no stops.
type GetVehicleScheduleQueryHandler struct {
	orders   ports.OrderReader
	vehicles ports.VehicleReader
	ranker   services.DistanceRanker
}

func NewGetVehicleScheduleQueryHandler(
	orders ports.OrderReader,
	vehicles ports.VehicleReader,
	ranker services.DistanceRanker,
) GetVehicleScheduleQueryHandler {
	return GetVehicleScheduleQueryHandler{orders: orders, vehicles: vehicles, ranker: ranker}
}

func (h GetVehicleScheduleQueryHandler) Handle(ctx context.Context, query GetVehicleScheduleQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	stops := make([]*order.Order, 0)
	for _, o := range all {
		if o.IsAssignedTo(query.Plate()) && o.IsScheduledOn(query.Day()) {
			stops = append(stops, o)
		}
	}

	ranked, err := h.ranker.Rank(stops)
	if err != nil {
		return nil, err
	}

	return orderViews(ctx, h.vehicles, ranked)
}
