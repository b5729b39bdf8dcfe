// Package demo drives the showcase scenario of a freshly seeded store: a
// fixed set of assignments and a favourite vehicle applied once after
// seeding, and the first three orders completed on a timer after start-up.
//
// Everything goes through the regular command handlers, so the scenario
// obeys the same capacity rules and persistence as API calls.
package demo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/ports"
)

// Assignment pairs an order and a vehicle by their position in the seed
// collections.
type Assignment struct {
	Order   int
	Vehicle int
}

// SeedAssignments are applied in order after seeding.
var SeedAssignments = []Assignment{
	{Order: 0, Vehicle: 0},
	{Order: 1, Vehicle: 0},
	{Order: 12, Vehicle: 0},
	{Order: 13, Vehicle: 0},
	{Order: 2, Vehicle: 1},
	{Order: 3, Vehicle: 3},
	{Order: 4, Vehicle: 4},
	{Order: 7, Vehicle: 4},
	{Order: 10, Vehicle: 3},
}

// FavouriteVehicle is the fleet position toggled after the assignments.
const FavouriteVehicle = 3

// CompletionDelays separate the automatic completions of orders 0, 1 and 2.
// Each delay counts from the previous completion.
var CompletionDelays = []time.Duration{
	5000 * time.Millisecond,
	2500 * time.Millisecond,
	1500 * time.Millisecond,
}

type (
	Assigner interface {
		Handle(ctx context.Context, cmd commands.AssignVehicleCommand) error
	}

	FavouriteToggler interface {
		Handle(ctx context.Context, cmd commands.ToggleFavouriteCommand) (bool, error)
	}

	Completer interface {
		Handle(ctx context.Context, cmd commands.CompleteDeliveryCommand) error
	}
)

// Scenario applies the demo steps against the store.
type Scenario struct {
	orders   ports.OrderReader
	vehicles ports.VehicleReader
	assign   Assigner
	toggle   FavouriteToggler
	complete Completer
	logger   *slog.Logger
}

func NewScenario(
	orders ports.OrderReader,
	vehicles ports.VehicleReader,
	assign Assigner,
	toggle FavouriteToggler,
	complete Completer,
	logger *slog.Logger,
) (*Scenario, error) {
	if orders == nil || vehicles == nil {
		return nil, errors.New("readers are required")
	}
	if assign == nil || toggle == nil || complete == nil {
		return nil, errors.New("command handlers are required")
	}
	if logger == nil {
		return nil, errors.New("logger is nil")
	}

	return &Scenario{
		orders:   orders,
		vehicles: vehicles,
		assign:   assign,
		toggle:   toggle,
		complete: complete,
		logger:   logger.With("component", "DemoScenario"),
	}, nil
}

// Seed applies SeedAssignments and toggles FavouriteVehicle. A step that
// fails is logged and skipped; every failure is returned joined.
func (s *Scenario) Seed(ctx context.Context) error {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return err
	}
	vehicles, err := s.vehicles.ListVehicles(ctx)
	if err != nil {
		return err
	}

	var failures []error
	for _, a := range SeedAssignments {
		if a.Order >= len(orders) || a.Vehicle >= len(vehicles) {
			failures = append(failures, fmt.Errorf("assignment %d -> %d: out of range", a.Order, a.Vehicle))
			continue
		}

		orderID := orders[a.Order].ID().String()
		plate := vehicles[a.Vehicle].Plate()

		cmd, err := commands.NewAssignVehicleCommand(orderID, plate)
		if err == nil {
			err = s.assign.Handle(ctx, cmd)
		}
		if err != nil {
			s.logger.WarnContext(ctx, "demo assignment failed", "orderId", orderID, "plate", plate, "error", err)
			failures = append(failures, fmt.Errorf("assign %s to %s: %w", orderID, plate, err))
		}
	}

	if FavouriteVehicle < len(vehicles) {
		cmd, err := commands.NewToggleFavouriteCommand(vehicles[FavouriteVehicle].Plate())
		if err == nil {
			_, err = s.toggle.Handle(ctx, cmd)
		}
		if err != nil {
			failures = append(failures, fmt.Errorf("toggle favourite: %w", err))
		}
	}

	s.logger.InfoContext(ctx, "demo scenario seeded", "assignments", len(SeedAssignments), "failures", len(failures))
	return errors.Join(failures...)
}

// CompleteNth completes the order at position i when it is assigned and not
// yet completed. It reports whether a delivery was completed.
func (s *Scenario) CompleteNth(ctx context.Context, i int) (bool, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return false, err
	}
	if i < 0 || i >= len(orders) {
		return false, nil
	}

	o := orders[i]
	if !o.IsAssigned() || o.IsCompleted() {
		return false, nil
	}

	cmd, err := commands.NewCompleteDeliveryCommand(o.ID().String())
	if err != nil {
		return false, err
	}
	if err := s.complete.Handle(ctx, cmd); err != nil {
		return false, err
	}
	return true, nil
}
