package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// GetOrderDetailsQueryHandler returns a single order with its live vehicle.
// A missing order yields errs.ErrObjectNotFound.
type GetOrderDetailsQueryHandler struct {
	orders   ports.OrderReader
	vehicles ports.VehicleReader
}

func NewGetOrderDetailsQueryHandler(orders ports.OrderReader, vehicles ports.VehicleReader) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{orders: orders, vehicles: vehicles}
}

func (h GetOrderDetailsQueryHandler) Handle(ctx context.Context, query GetOrderDetailsQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.orders.FindOrder(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}

	fleet, err := fleetIndex(ctx, h.vehicles)
	if err != nil {
		return OrderView{}, err
	}

	return newOrderView(o, fleet), nil
}
