package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand marks an assigned order as delivered.
type CompleteDeliveryCommand struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewCompleteDeliveryCommand(orderID string) (CompleteDeliveryCommand, error) {
	id, err := kernel.IDFromString(orderID)
	if err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return CompleteDeliveryCommand{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

func (c CompleteDeliveryCommand) OrderID() kernel.ID {
	return c.orderID
}
