package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrToggleFavouriteCommandIsNotConstructed = errors.New(
	"ToggleFavouriteCommand must be created via NewToggleFavouriteCommand constructor",
)

// ToggleFavouriteCommand flips a vehicle's favourite flag.
type ToggleFavouriteCommand struct {
	plate string

	guard guard.ConstructorGuard
}

func NewToggleFavouriteCommand(plate string) (ToggleFavouriteCommand, error) {
	plate, err := requirePlate(plate)
	if err != nil {
		return ToggleFavouriteCommand{}, err
	}

	return ToggleFavouriteCommand{
		plate: plate,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ToggleFavouriteCommand) Validate() error {
	return c.guard.Validate(ErrToggleFavouriteCommandIsNotConstructed)
}

func (c ToggleFavouriteCommand) Plate() string {
	return c.plate
}
