// Package eventbus is the in-process implementation of ports.EventBus.
// Every subscriber gets its own bounded buffer; an event that does not fit
// is dropped for that subscriber only, so a slow reader never stalls
// publishers.
package eventbus

import (
	"context"
	"sync"
	"sync/atomic"

	"logistics/internal/core/domain/events"
	"logistics/internal/core/ports"
)

// DefaultBuffer is the per-subscriber buffer size used by NewBroker.
const DefaultBuffer = 16

var _ ports.EventBus = (*Broker)(nil)

type Broker struct {
	mu      sync.Mutex
	subs    map[string]map[*subscription]struct{}
	buffer  int
	dropped atomic.Uint64
}

func NewBroker() *Broker {
	return NewBrokerWithBuffer(DefaultBuffer)
}

// NewBrokerWithBuffer sizes the per-subscriber buffers; values below one are
// raised to one.
func NewBrokerWithBuffer(buffer int) *Broker {
	if buffer < 1 {
		buffer = 1
	}
	return &Broker{
		subs:   make(map[string]map[*subscription]struct{}),
		buffer: buffer,
	}
}

func (b *Broker) Subscribe(ctx context.Context, topic string) (ports.Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sub := &subscription{
		broker: b,
		topic:  topic,
		ch:     make(chan events.Event, b.buffer),
	}

	b.mu.Lock()
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[*subscription]struct{})
	}
	b.subs[topic][sub] = struct{}{}
	b.mu.Unlock()

	return sub, nil
}

func (b *Broker) Publish(_ context.Context, topic string, evt events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for sub := range b.subs[topic] {
		select {
		case sub.ch <- evt:
		default:
			b.dropped.Add(1)
		}
	}
	return nil
}

// Dropped counts events discarded because a subscriber buffer was full.
func (b *Broker) Dropped() uint64 {
	return b.dropped.Load()
}

// Subscribers returns the number of open subscriptions on topic.
func (b *Broker) Subscribers(topic string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[topic])
}

func (b *Broker) unsubscribe(sub *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	m := b.subs[sub.topic]
	if _, ok := m[sub]; !ok {
		return
	}
	delete(m, sub)
	if len(m) == 0 {
		delete(b.subs, sub.topic)
	}
	close(sub.ch)
}

type subscription struct {
	broker *Broker
	topic  string
	ch     chan events.Event
}

func (s *subscription) Events() <-chan events.Event {
	return s.ch
}

// Close unsubscribes and closes the channel. Closing twice is a no-op.
func (s *subscription) Close() error {
	s.broker.unsubscribe(s)
	return nil
}
