package commands

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrWeightIsInvalid = errs.NewValueIsInvalidError("weight must be greater than 0")
)

// NewOrderInput carries the fields of an order submission.
// OrderID may be empty, in which case a UUID is generated.
type NewOrderInput struct {
	OrderID      string
	Weight       float64
	Address      string
	City         string
	Country      string
	PostalCode   string
	Latitude     float64
	Longitude    float64
	Date         time.Time
	Observations *string
}

// CreateOrderCommand represents a request to create a new delivery order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(NewOrderInput{
//	    Weight: 120, Address: "Rua Augusta 10", City: "Lisbon",
//	    Country: "Portugal", PostalCode: "1100-053",
//	    Latitude: 38.7101, Longitude: -9.1366, Date: time.Now(),
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, latency.None())
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created", cmd.OrderID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.ID
	weight       float64
	destination  order.Destination
	date         time.Time
	observations *string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the submission and builds the command.
// All validation failures are reported together.
func NewCreateOrderCommand(in NewOrderInput) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard:        guard.NewConstructorGuard(),
		observations: in.Observations,
	}

	if err := errors.Join(
		cmd.setOrderID(in.OrderID),
		cmd.setWeight(in.Weight),
		cmd.setDestination(in),
		cmd.setDate(in.Date),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the order will be stored under.
func (c CreateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c CreateOrderCommand) Weight() float64 {
	return c.weight
}

func (c CreateOrderCommand) Destination() order.Destination {
	return c.destination
}

func (c CreateOrderCommand) Date() time.Time {
	return c.date
}

func (c CreateOrderCommand) Observations() *string {
	return c.observations
}

func (c *CreateOrderCommand) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		c.orderID = kernel.NewID()
		return nil
	}

	id, err := kernel.IDFromString(orderID)
	if err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setWeight(weight float64) error {
	if !(weight > 0) {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}

func (c *CreateOrderCommand) setDestination(in NewOrderInput) error {
	coords, err := kernel.NewCoordinates(in.Latitude, in.Longitude)
	if err != nil {
		return err
	}

	dest, err := order.NewDestination(in.Address, in.City, in.Country, in.PostalCode, coords)
	if err != nil {
		return err
	}

	c.destination = dest
	return nil
}

func (c *CreateOrderCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return order.ErrDateIsRequired
	}

	c.date = date
	return nil
}
