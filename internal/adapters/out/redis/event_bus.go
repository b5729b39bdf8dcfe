package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"logistics/internal/core/domain/events"
	"logistics/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const subscriptionBuffer = 16

var _ ports.EventBus = (*EventBus)(nil)

// EventBus publishes events as JSON on channel prefix+topic. Subscribers
// receive events published by any process connected to the same Redis.
type EventBus struct {
	rdb    *goredis.Client
	prefix string
	logger *slog.Logger
}

func NewEventBus(rdb *goredis.Client, prefix string, logger *slog.Logger) *EventBus {
	return &EventBus{
		rdb:    rdb,
		prefix: prefix,
		logger: logger.With("component", "RedisEventBus"),
	}
}

func (b *EventBus) Publish(ctx context.Context, topic string, evt events.Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	return b.rdb.Publish(ctx, b.channel(topic), data).Err()
}

// Subscribe returns once Redis has confirmed the subscription, so events
// published after it returns are not missed.
func (b *EventBus) Subscribe(ctx context.Context, topic string) (ports.Subscription, error) {
	ps := b.rdb.Subscribe(ctx, b.channel(topic))
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("subscribe %q: %w", topic, err)
	}

	sub := &subscription{
		ps:   ps,
		ch:   make(chan events.Event, subscriptionBuffer),
		done: make(chan struct{}),
	}
	go sub.pump(b.logger)
	return sub, nil
}

func (b *EventBus) channel(topic string) string {
	return b.prefix + topic
}

type subscription struct {
	ps   *goredis.PubSub
	ch   chan events.Event
	done chan struct{}
	once sync.Once
}

func (s *subscription) pump(logger *slog.Logger) {
	defer close(s.done)
	defer close(s.ch)

	for msg := range s.ps.Channel() {
		var evt events.Event
		if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
			logger.Warn("discarding malformed event", "channel", msg.Channel, "error", err)
			continue
		}
		select {
		case s.ch <- evt:
		default:
			logger.Warn("subscriber buffer full, dropping event", "eventId", evt.ID)
		}
	}
}

func (s *subscription) Events() <-chan events.Event {
	return s.ch
}

// Close ends the Redis subscription and waits for the channel to close.
func (s *subscription) Close() error {
	var err error
	s.once.Do(func() {
		err = s.ps.Close()
		<-s.done
	})
	return err
}
