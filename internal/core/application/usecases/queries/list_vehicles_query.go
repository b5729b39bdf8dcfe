package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrListVehiclesQueryIsNotConstructed = errors.New(
	"ListVehiclesQuery must be created via NewListVehiclesQuery constructor",
)

// ListVehiclesQuery lists the fleet, favourites first.
type ListVehiclesQuery struct {
	guard guard.ConstructorGuard
}

func NewListVehiclesQuery() ListVehiclesQuery {
	return ListVehiclesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrListVehiclesQueryIsNotConstructed)
}
