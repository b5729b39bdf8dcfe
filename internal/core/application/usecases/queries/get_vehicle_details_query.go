package queries

import (
	"errors"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetVehicleDetailsQueryIsNotConstructed = errors.New(
		"GetVehicleDetailsQuery must be created via NewGetVehicleDetailsQuery constructor",
	)
	ErrPlateIsRequired = errs.NewValueIsRequiredError("vehicle plate")
)

// GetVehicleDetailsQuery fetches one vehicle by plate.
type GetVehicleDetailsQuery struct {
	plate string
	guard guard.ConstructorGuard
}

func NewGetVehicleDetailsQuery(plate string) (GetVehicleDetailsQuery, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return GetVehicleDetailsQuery{}, ErrPlateIsRequired
	}
	return GetVehicleDetailsQuery{plate: plate, guard: guard.NewConstructorGuard()}, nil
}

func (q GetVehicleDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleDetailsQueryIsNotConstructed)
}

func (q GetVehicleDetailsQuery) Plate() string {
	return q.plate
}
