package redis_test

import (
	"log/slog"
	"testing"
	"time"

	"logistics/internal/adapters/out/memory"
	"logistics/internal/adapters/out/redis"
	"logistics/internal/core/domain/events"
	"logistics/internal/pkg/errs"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb, err := redis.NewClient(t.Context(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestNewClient(t *testing.T) {
	t.Run("requires a url", func(t *testing.T) {
		_, err := redis.NewClient(t.Context(), "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects a malformed url", func(t *testing.T) {
		_, err := redis.NewClient(t.Context(), "http://nope")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestBlobStore(t *testing.T) {
	mr, rdb := newClient(t)
	store := redis.NewBlobStore(rdb, "logistics:")
	ctx := t.Context()

	_, err := store.Load(ctx, "orders")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	require.NoError(t, store.Save(ctx, "orders", []byte("[]")))
	got, err := store.Load(ctx, "orders")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))

	raw, err := mr.Get("logistics:orders")
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	require.NoError(t, store.Delete(ctx, "orders"))
	require.NoError(t, store.Delete(ctx, "orders"))
	assert.False(t, mr.Exists("logistics:orders"))
}

func TestBlobStoreBacksEntityStore(t *testing.T) {
	_, rdb := newClient(t)
	store := redis.NewBlobStore(rdb, "test:")
	seed := memory.Seed{Vehicles: []memory.VehicleDTO{{Plate: "AA", MaxWeightCapacity: 10, AvailableWeight: 10}}}

	first, err := memory.Open(t.Context(), store, seed)
	require.NoError(t, err)
	assert.True(t, first.Seeded())

	second, err := memory.Open(t.Context(), store, seed)
	require.NoError(t, err)
	assert.False(t, second.Seeded())
}

func TestEventBus(t *testing.T) {
	_, rdb := newClient(t)
	bus := redis.NewEventBus(rdb, "logistics:", slog.New(slog.DiscardHandler))
	ctx := t.Context()

	sub, err := bus.Subscribe(ctx, events.Topic)
	require.NoError(t, err)

	evt := events.NewDeliveryCompleted("o1", "AA", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NoError(t, bus.Publish(ctx, events.Topic, evt))

	select {
	case got := <-sub.Events():
		assert.Equal(t, evt, got)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for event")
	}

	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())
	_, ok := <-sub.Events()
	assert.False(t, ok)
}
