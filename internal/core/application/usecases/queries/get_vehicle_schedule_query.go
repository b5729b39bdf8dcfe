package queries

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var ErrGetVehicleScheduleQueryIsNotConstructed = errors.New(
	"GetVehicleScheduleQuery must be created via NewGetVehicleScheduleQuery constructor",
)

// GetVehicleScheduleQuery selects the orders of one vehicle scheduled on one
// calendar day (UTC).
//
// Example:
//
//	day := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
//	query, _ := NewGetVehicleScheduleQuery("AA-11-BB", day)
//	stops, err := handler.Handle(ctx, query) // nearest first
type GetVehicleScheduleQuery struct {
	plate string
	day   time.Time
	guard guard.ConstructorGuard
}

func NewGetVehicleScheduleQuery(plate string, day time.Time) (GetVehicleScheduleQuery, error) {
	plate = strings.TrimSpace(plate)
	var errList []error
	if plate == "" {
		errList = append(errList, ErrPlateIsRequired)
	}
	if day.IsZero() {
		errList = append(errList, order.ErrDateIsRequired)
	}
	if err := errors.Join(errList...); err != nil {
		return GetVehicleScheduleQuery{}, err
	}

	return GetVehicleScheduleQuery{plate: plate, day: day, guard: guard.NewConstructorGuard()}, nil
}

func (q GetVehicleScheduleQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleScheduleQueryIsNotConstructed)
}

func (q GetVehicleScheduleQuery) Plate() string {
	return q.plate
}

func (q GetVehicleScheduleQuery) Day() time.Time {
	return q.day
}
