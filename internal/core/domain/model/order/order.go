package order

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDateIsRequired is returned for a zero delivery date.
	ErrDateIsRequired = errs.NewValueIsRequiredError("date")

	// ErrPlateIsRequired is returned when assigning to a blank plate.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")

	// ErrOrderIsNotAssigned is returned when completing an order that has no vehicle.
	ErrOrderIsNotAssigned = errors.New("order has no vehicle assigned")
)

// Order represents a delivery order. It is the aggregate root for the
// order side of the assignment bookkeeping.
//
// Order follows these invariants:
//   - Must have a non-empty identifier
//   - Weight must be a finite number greater than 0
//   - Must have a valid destination and a non-zero date
//   - Holds only the plate of its vehicle, never a vehicle snapshot
//
// The capacity side of an assignment lives on the vehicle; keeping both in
// step is the job of services.AssignmentService.
type Order struct {
	// id is the unique identifier for the order
	id kernel.ID

	// weight is the cargo weight reserved on the assigned vehicle
	weight float64

	// destination is where the order is delivered
	destination Destination

	// date is the scheduled delivery instant
	date time.Time

	// observations is optional free text (nil when absent)
	observations *string

	// vehiclePlate is the assigned vehicle's plate (nil if unassigned)
	vehiclePlate *string

	// completed marks a delivered order
	completed bool

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new, unassigned and uncompleted Order.
//
// Parameters:
//   - id: Unique identifier for the order
//   - weight: Cargo weight (must be positive)
//   - destination: Delivery address built with NewDestination
//   - date: Scheduled delivery date (must be non-zero)
//   - observations: Optional free text, nil when absent
//
// Example:
//
//	coords, _ := kernel.NewCoordinates(41.1579, -8.6291)
//	dest, _ := order.NewDestination("Rua de Santa Catarina 1", "Porto", "Portugal", "4000-447", coords)
//	o, err := order.NewOrder(kernel.NewID(), 120, dest, time.Now(), nil)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.ID, weight float64, destination Destination, date time.Time, observations *string) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setWeight(weight),
		order.setDestination(destination),
		order.setDate(date),
	); err != nil {
		return nil, err
	}
	order.observations = cloneText(observations)

	return order, nil
}

// RestoreOrder rebuilds an Order from persisted state. The same validation as
// NewOrder applies; the vehicle plate and completion flag are taken as is.
func RestoreOrder(
	id kernel.ID,
	weight float64,
	destination Destination,
	date time.Time,
	observations *string,
	vehiclePlate *string,
	completed bool,
) (*Order, error) {
	order, err := NewOrder(id, weight, destination, date, observations)
	if err != nil {
		return nil, err
	}

	if vehiclePlate != nil && strings.TrimSpace(*vehiclePlate) != "" {
		plate := strings.TrimSpace(*vehiclePlate)
		order.vehiclePlate = &plate
	}
	order.completed = completed

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// Weight returns the cargo weight.
func (o *Order) Weight() float64 {
	return o.weight
}

// Destination returns the delivery address.
func (o *Order) Destination() Destination {
	return o.destination
}

// Date returns the scheduled delivery date.
func (o *Order) Date() time.Time {
	return o.date
}

// Observations returns a copy of the free-text observations, nil when absent.
func (o *Order) Observations() *string {
	return cloneText(o.observations)
}

// VehiclePlate returns the assigned vehicle's plate and whether one is set.
func (o *Order) VehiclePlate() (string, bool) {
	if o.vehiclePlate == nil {
		return "", false
	}
	return *o.vehiclePlate, true
}

// IsAssigned reports whether the order references a vehicle.
func (o *Order) IsAssigned() bool {
	return o.vehiclePlate != nil
}

// IsAssignedTo reports whether the order references the vehicle with plate.
func (o *Order) IsAssignedTo(plate string) bool {
	return o.vehiclePlate != nil && *o.vehiclePlate == plate
}

// IsCompleted reports whether the order has been delivered.
func (o *Order) IsCompleted() bool {
	return o.completed
}

// Status derives the lifecycle stage from the vehicle reference and the
// completion flag.
func (o *Order) Status() Status {
	switch {
	case o.completed:
		return Completed
	case o.vehiclePlate != nil:
		return Assigned
	default:
		return Pending
	}
}

// IsScheduledOn reports whether the order date falls on the same UTC
// calendar day as day. Time of day is ignored.
func (o *Order) IsScheduledOn(day time.Time) bool {
	return o.date.UTC().Format(time.DateOnly) == day.UTC().Format(time.DateOnly)
}

// Assign points the order at the vehicle with the given plate. Reassignment
// replaces the previous plate; completed orders may be assigned too.
func (o *Order) Assign(plate string) error {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return ErrPlateIsRequired
	}

	o.vehiclePlate = &plate
	return nil
}

// Unassign clears the vehicle reference.
func (o *Order) Unassign() {
	o.vehiclePlate = nil
}

// Complete marks the order as delivered. The order must reference a vehicle.
// Completing an already completed order is allowed and keeps it completed.
func (o *Order) Complete() error {
	if o.vehiclePlate == nil {
		return ErrOrderIsNotAssigned
	}

	o.completed = true
	return nil
}

// ChangeObservations replaces the free-text observations; nil clears them.
func (o *Order) ChangeObservations(text *string) {
	o.observations = cloneText(text)
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid", fmt.Errorf("%v is not greater than 0", weight))
	}
	o.weight = weight
	return nil
}

func (o *Order) setDestination(destination Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}
	o.date = date
	return nil
}

func cloneText(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
