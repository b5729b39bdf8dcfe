package ports

import (
	"context"

	"logistics/internal/core/domain/events"
)

// EventPublisher delivers events to every current subscriber of a topic.
// Publishing never blocks on slow subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, evt events.Event) error
}

// EventSubscriber opens subscriptions on a topic.
type EventSubscriber interface {
	Subscribe(ctx context.Context, topic string) (Subscription, error)
}

// Subscription is a live feed of events. The channel is closed after Close.
type Subscription interface {
	Events() <-chan events.Event
	Close() error
}

// EventBus is both sides of the bus.
type EventBus interface {
	EventPublisher
	EventSubscriber
}
