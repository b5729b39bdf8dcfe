package vehicle

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrPlateIsRequired is returned when creating a vehicle without a plate.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
)

// Vehicle is a capacity-bounded delivery unit identified by its plate.
// It is an aggregate root that owns the weight budget of the orders assigned
// to it.
//
// Business rules:
//   - Plate must be non-empty; it is the vehicle's identity
//   - Maximum weight capacity must be a finite number greater than 0
//   - Reserve fails when the available weight is strictly less than requested
//   - Release credits weight back unconditionally, so the available weight
//     can exceed the maximum when an order is released twice
//
// Example usage:
//
//	v, err := vehicle.NewVehicle("12-AB-34", 1000)
//	if err != nil {
//	    // Handle construction error
//	}
//	_ = v.Reserve(300) // available is now 700
type Vehicle struct {
	// plate uniquely identifies the vehicle
	plate string
	// maxWeightCapacity is the total weight the vehicle can carry
	maxWeightCapacity float64
	// availableWeight is what is left after reservations
	availableWeight float64
	// favourite is a user-facing flag used to pin vehicles
	favourite bool
	// guard ensures the vehicle was properly constructed
	guard guard.ConstructorGuard
}

// NewVehicle creates an empty, non-favourite Vehicle whose available weight
// equals its maximum capacity.
//
// Parameters:
//   - plate: Registration plate (must be non-empty)
//   - maxWeightCapacity: Total weight budget (must be positive)
func NewVehicle(plate string, maxWeightCapacity float64) (*Vehicle, error) {
	return RestoreVehicle(plate, maxWeightCapacity, maxWeightCapacity, false)
}

// RestoreVehicle rebuilds a Vehicle from persisted state. The available
// weight is taken as is, provided it is a finite number.
func RestoreVehicle(plate string, maxWeightCapacity, availableWeight float64, favourite bool) (*Vehicle, error) {
	v := &Vehicle{
		favourite: favourite,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setPlate(plate),
		v.setMaxWeightCapacity(maxWeightCapacity),
		v.setAvailableWeight(availableWeight),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate ensures the Vehicle was built by a constructor.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// Plate returns the vehicle's identity.
func (v *Vehicle) Plate() string {
	return v.plate
}

// MaxWeightCapacity returns the total weight budget.
func (v *Vehicle) MaxWeightCapacity() float64 {
	return v.maxWeightCapacity
}

// AvailableWeight returns the weight still free for new reservations.
func (v *Vehicle) AvailableWeight() float64 {
	return v.availableWeight
}

// IsFavourite reports whether the vehicle is pinned.
func (v *Vehicle) IsFavourite() bool {
	return v.favourite
}

// IsEqual compares two vehicles by plate.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.plate == other.plate
}

// CanCarry reports whether weight fits in the available budget.
func (v *Vehicle) CanCarry(weight float64) bool {
	return v.availableWeight >= weight
}

// EnsureCanCarry is CanCarry returning a CapacityExceededError instead of false.
func (v *Vehicle) EnsureCanCarry(weight float64) error {
	if !v.CanCarry(weight) {
		return errs.NewCapacityExceededError("vehicle "+v.plate, weight, v.availableWeight)
	}
	return nil
}

// Reserve takes weight out of the available budget. On failure the vehicle
// is unchanged.
func (v *Vehicle) Reserve(weight float64) error {
	if err := validateWeight(weight); err != nil {
		return err
	}
	if err := v.EnsureCanCarry(weight); err != nil {
		return err
	}

	v.availableWeight -= weight
	return nil
}

// Release credits weight back to the available budget. It does not check
// the result against the maximum capacity.
func (v *Vehicle) Release(weight float64) error {
	if err := validateWeight(weight); err != nil {
		return err
	}

	v.availableWeight += weight
	return nil
}

// ToggleFavourite flips the favourite flag and returns the new value.
func (v *Vehicle) ToggleFavourite() bool {
	v.favourite = !v.favourite
	return v.favourite
}

func (v *Vehicle) setPlate(plate string) error {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return ErrPlateIsRequired
	}
	v.plate = plate
	return nil
}

func (v *Vehicle) setMaxWeightCapacity(capacity float64) error {
	if math.IsNaN(capacity) || math.IsInf(capacity, 0) || capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"max weight capacity is invalid",
			fmt.Errorf("%v is not greater than 0", capacity),
		)
	}
	v.maxWeightCapacity = capacity
	return nil
}

func (v *Vehicle) setAvailableWeight(available float64) error {
	if math.IsNaN(available) || math.IsInf(available, 0) {
		return errs.NewValueIsInvalidErrorWithCause(
			"available weight is invalid",
			fmt.Errorf("%v is not a finite number", available),
		)
	}
	v.availableWeight = available
	return nil
}

func validateWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid", fmt.Errorf("%v is not greater than 0", weight))
	}
	return nil
}
