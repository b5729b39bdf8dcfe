package queries

import (
	"context"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// ListOrdersQueryHandler filters and sorts the order collection.
// Without criteria the orders come back in insertion order.
type ListOrdersQueryHandler struct {
	orders   ports.OrderReader
	vehicles ports.VehicleReader
	latency  Latency
	query    services.OrderQuery
}

func NewListOrdersQueryHandler(
	orders ports.OrderReader,
	vehicles ports.VehicleReader,
	latency Latency,
) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		orders:   orders,
		vehicles: vehicles,
		latency:  latency,
		query:    services.NewOrderQuery(),
	}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.latency.Wait(ctx); err != nil {
		return nil, err
	}

	all, err := h.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	filter := query.Filter()
	selected, err := h.query.Apply(all, &filter)
	if err != nil {
		return nil, err
	}

	return orderViews(ctx, h.vehicles, selected)
}
