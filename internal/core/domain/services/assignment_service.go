package services

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
)

// ErrVehicleMismatch is returned when completing an order against a vehicle
// it does not reference.
var ErrVehicleMismatch = errors.New("order is not assigned to this vehicle")

// AssignmentService keeps an order's vehicle reference and the vehicle's
// weight budget in step. Each method either updates both aggregates or
// leaves both untouched.
//
// Business rules:
//   - Assign checks available >= weight even for completed orders, but only
//     reserves weight for orders that are not completed
//   - Reassigning does not credit the previous vehicle
//   - Unassign credits the vehicle unconditionally, including for completed
//     orders whose weight was already released
//   - Complete releases the weight every time it is called
//
// Example usage:
//
//	svc := services.NewAssignmentService()
//	if err := svc.Assign(o, v); errors.Is(err, errs.ErrCapacityExceeded) {
//	    // neither o nor v changed
//	}
type AssignmentService struct{}

// NewAssignmentService creates a new AssignmentService instance.
func NewAssignmentService() AssignmentService {
	return AssignmentService{}
}

// Assign binds o to v, reserving o's weight on v unless o is completed.
//
// Returns:
//   - errs.CapacityExceededError when v cannot carry o
//   - validation errors for unconstructed aggregates
func (AssignmentService) Assign(o *order.Order, v *vehicle.Vehicle) error {
	if err := errors.Join(o.Validate(), v.Validate()); err != nil {
		return err
	}

	if err := v.EnsureCanCarry(o.Weight()); err != nil {
		return err
	}

	if !o.IsCompleted() {
		if err := v.Reserve(o.Weight()); err != nil {
			return err
		}
	}

	if err := o.Assign(v.Plate()); err != nil {
		if !o.IsCompleted() {
			_ = v.Release(o.Weight())
		}
		return err
	}

	return nil
}

// Unassign clears o's vehicle reference and credits o's weight back to v.
// It does not check that o referenced v.
func (AssignmentService) Unassign(o *order.Order, v *vehicle.Vehicle) error {
	if err := errors.Join(o.Validate(), v.Validate()); err != nil {
		return err
	}

	if err := v.Release(o.Weight()); err != nil {
		return err
	}
	o.Unassign()

	return nil
}

// Complete marks o delivered and releases its weight on v. The order must
// reference v.
func (AssignmentService) Complete(o *order.Order, v *vehicle.Vehicle) error {
	if err := errors.Join(o.Validate(), v.Validate()); err != nil {
		return err
	}

	if !o.IsAssignedTo(v.Plate()) {
		return fmt.Errorf("%w: order %s, vehicle %s", ErrVehicleMismatch, o.ID(), v.Plate())
	}

	if err := v.Release(o.Weight()); err != nil {
		return err
	}

	return o.Complete()
}
