package notifications

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/core/domain/events"
	"logistics/internal/core/ports"
)

// EventObserver is told about every event the listener consumes.
type EventObserver interface {
	ObserveEvent(eventType string)
}

// Listener feeds delivery events from the bus into a Feed.
type Listener struct {
	feed       *Feed
	subscriber ports.EventSubscriber
	observer   EventObserver
	logger     *slog.Logger
}

func NewListener(feed *Feed, subscriber ports.EventSubscriber, observer EventObserver, logger *slog.Logger) (*Listener, error) {
	if feed == nil {
		return nil, errors.New("feed is nil")
	}
	if subscriber == nil {
		return nil, errors.New("subscriber is nil")
	}
	if logger == nil {
		return nil, errors.New("logger is nil")
	}

	return &Listener{
		feed:       feed,
		subscriber: subscriber,
		observer:   observer,
		logger:     logger.With("component", "NotificationListener"),
	}, nil
}

// Run consumes the delivery topic until ctx is cancelled or the
// subscription ends.
func (l *Listener) Run(ctx context.Context) error {
	sub, err := l.subscriber.Subscribe(ctx, events.Topic)
	if err != nil {
		return err
	}
	defer func() {
		if err := sub.Close(); err != nil {
			l.logger.Warn("failed to close subscription", "error", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-sub.Events():
			if !ok {
				return nil
			}
			n := l.feed.Add(evt)
			if l.observer != nil {
				l.observer.ObserveEvent(string(evt.Type))
			}
			l.logger.Info("notification added", "id", n.ID, "message", n.Message)
		}
	}
}
