package eventbus_test

import (
	"testing"
	"time"

	"logistics/internal/adapters/out/eventbus"
	"logistics/internal/core/domain/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func delivered(plate, id string) events.Event {
	return events.NewDeliveryCompleted(id, plate, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestBrokerPublishSubscribe(t *testing.T) {
	ctx := t.Context()
	b := eventbus.NewBroker()

	sub, err := b.Subscribe(ctx, events.Topic)
	require.NoError(t, err)
	other, err := b.Subscribe(ctx, "other")
	require.NoError(t, err)

	evt := delivered("AA", "o1")
	require.NoError(t, b.Publish(ctx, events.Topic, evt))

	select {
	case got := <-sub.Events():
		assert.Equal(t, evt, got)
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timeout waiting for event")
	}

	select {
	case got := <-other.Events():
		t.Fatalf("unexpected event on other topic: %+v", got)
	default:
	}
}

func TestBrokerDropsWhenBufferIsFull(t *testing.T) {
	ctx := t.Context()
	b := eventbus.NewBrokerWithBuffer(1)
	sub, err := b.Subscribe(ctx, events.Topic)
	require.NoError(t, err)

	require.NoError(t, b.Publish(ctx, events.Topic, delivered("AA", "o1")))
	require.NoError(t, b.Publish(ctx, events.Topic, delivered("AA", "o2")))

	got := <-sub.Events()
	assert.Equal(t, "o1", got.OrderID)
	assert.Equal(t, uint64(1), b.Dropped())
}

func TestSubscriptionClose(t *testing.T) {
	ctx := t.Context()
	b := eventbus.NewBroker()
	sub, err := b.Subscribe(ctx, events.Topic)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Subscribers(events.Topic))

	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())

	_, ok := <-sub.Events()
	assert.False(t, ok, "channel should be closed after Close")
	assert.Equal(t, 0, b.Subscribers(events.Topic))

	// Publishing with no subscribers is fine.
	require.NoError(t, b.Publish(ctx, events.Topic, delivered("AA", "o1")))
}
