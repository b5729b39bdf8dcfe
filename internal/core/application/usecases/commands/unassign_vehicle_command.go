package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrUnassignVehicleCommandIsNotConstructed = errors.New(
	"UnassignVehicleCommand must be created via NewUnassignVehicleCommand constructor",
)

// UnassignVehicleCommand detaches an order from a vehicle and credits the
// order's weight back to that vehicle. The plate is taken from the caller;
// it is not checked against the order's current vehicle.
type UnassignVehicleCommand struct {
	orderID kernel.ID
	plate   string

	guard guard.ConstructorGuard
}

// NewUnassignVehicleCommand creates the command. A request without a plate
// does not carry enough information and is rejected.
func NewUnassignVehicleCommand(orderID, plate string) (UnassignVehicleCommand, error) {
	id, idErr := kernel.IDFromString(orderID)
	plate, plateErr := requirePlate(plate)
	if err := errors.Join(idErr, plateErr); err != nil {
		return UnassignVehicleCommand{}, err
	}

	return UnassignVehicleCommand{
		orderID: id,
		plate:   plate,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UnassignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrUnassignVehicleCommandIsNotConstructed)
}

func (c UnassignVehicleCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c UnassignVehicleCommand) Plate() string {
	return c.plate
}
