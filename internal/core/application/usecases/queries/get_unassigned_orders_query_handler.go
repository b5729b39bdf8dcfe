package queries

import (
	"context"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// GetUnassignedOrdersQueryHandler lists the orders still waiting for a
// vehicle, in insertion order.
type GetUnassignedOrdersQueryHandler struct {
	orders ports.OrderReader
	query  services.OrderQuery
}

func NewGetUnassignedOrdersQueryHandler(orders ports.OrderReader) GetUnassignedOrdersQueryHandler {
	return GetUnassignedOrdersQueryHandler{orders: orders, query: services.NewOrderQuery()}
}

func (h GetUnassignedOrdersQueryHandler) Handle(ctx context.Context, query GetUnassignedOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	unassigned, err := h.query.Apply(all, &services.OrderFilter{UnassignedOnly: true})
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(unassigned))
	for _, o := range unassigned {
		views = append(views, newOrderView(o, nil))
	}
	return views, nil
}
