package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery fetches one order by identifier.
type GetOrderDetailsQuery struct {
	orderID kernel.ID
	guard   guard.ConstructorGuard
}

func NewGetOrderDetailsQuery(orderID string) (GetOrderDetailsQuery, error) {
	id, err := kernel.IDFromString(orderID)
	if err != nil {
		return GetOrderDetailsQuery{}, err
	}
	return GetOrderDetailsQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

func (q GetOrderDetailsQuery) OrderID() kernel.ID {
	return q.orderID
}
