package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrChangeObservationCommandIsNotConstructed = errors.New(
	"ChangeObservationCommand must be created via NewChangeObservationCommand constructor",
)

// ChangeObservationCommand replaces an order's free-text observations.
// A nil text clears them.
type ChangeObservationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	text    *string

	guard guard.ConstructorGuard
}

// NewChangeObservationCommand creates the command after checking the order id.
func NewChangeObservationCommand(orderID string, text *string) (ChangeObservationCommand, error) {
	id, err := kernel.IDFromString(orderID)
	if err != nil {
		return ChangeObservationCommand{}, err
	}

	return ChangeObservationCommand{
		orderID: id,
		text:    text,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeObservationCommand) Validate() error {
	return c.guard.Validate(ErrChangeObservationCommandIsNotConstructed)
}

func (c ChangeObservationCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c ChangeObservationCommand) Text() *string {
	return c.text
}
