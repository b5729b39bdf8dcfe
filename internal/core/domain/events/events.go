// Package events defines the domain events published after state changes.
package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Topic is the bus topic delivery events are published on.
const Topic = "deliveries"

// Type distinguishes event kinds on the topic.
type Type string

// DeliveryCompleted is emitted once per successful completion.
const DeliveryCompleted Type = "delivery.completed"

// Event is the payload carried by the event bus. Its JSON form is the wire
// format for the Redis bus and the notification stream.
type Event struct {
	ID           string    `json:"id"`
	Type         Type      `json:"type"`
	OrderID      string    `json:"orderId"`
	VehiclePlate string    `json:"vehiclePlate"`
	Message      string    `json:"message"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// NewDeliveryCompleted builds the event for order orderID delivered by the
// vehicle with plate.
func NewDeliveryCompleted(orderID, plate string, at time.Time) Event {
	return Event{
		ID:           uuid.NewString(),
		Type:         DeliveryCompleted,
		OrderID:      orderID,
		VehiclePlate: plate,
		Message:      fmt.Sprintf("Vehicle %s delivered order %s", plate, orderID),
		OccurredAt:   at.UTC(),
	}
}
