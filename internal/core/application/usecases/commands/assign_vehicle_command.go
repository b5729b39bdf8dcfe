package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrAssignVehicleCommandIsNotConstructed = errors.New(
		"AssignVehicleCommand must be created via NewAssignVehicleCommand constructor",
	)
	// ErrPlateIsRequired is returned when an assignment request names no vehicle.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("vehicle plate")
)

// AssignVehicleCommand binds an order to a vehicle, reserving the order's
// weight on it.
//
// Example:
//
//	cmd, err := NewAssignVehicleCommand("k3j9x2", "AA-11-BB")
//	if err != nil {
//	    return err // errs.ErrValueIsRequired
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrCapacityExceeded) {
//	    // vehicle cannot carry the order
//	}
type AssignVehicleCommand struct {
	orderID kernel.ID
	plate   string

	guard guard.ConstructorGuard
}

// NewAssignVehicleCommand creates the command. Both the order id and the
// plate are required.
func NewAssignVehicleCommand(orderID, plate string) (AssignVehicleCommand, error) {
	id, idErr := kernel.IDFromString(orderID)
	plate, plateErr := requirePlate(plate)
	if err := errors.Join(idErr, plateErr); err != nil {
		return AssignVehicleCommand{}, err
	}

	return AssignVehicleCommand{
		orderID: id,
		plate:   plate,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehicleCommandIsNotConstructed)
}

func (c AssignVehicleCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c AssignVehicleCommand) Plate() string {
	return c.plate
}

func requirePlate(plate string) (string, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return "", ErrPlateIsRequired
	}
	return plate, nil
}
