package memory_test

import (
	"testing"
	"time"

	"logistics/internal/adapters/out/blobstore"
	"logistics/internal/adapters/out/memory"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeed(t *testing.T) {
	seed, err := memory.DefaultSeed(now)

	require.NoError(t, err)
	assert.Len(t, seed.Orders, 15)
	assert.Len(t, seed.Vehicles, 5)

	t.Run("vehicles start empty", func(t *testing.T) {
		for _, v := range seed.Vehicles {
			assert.InDelta(t, v.MaxWeightCapacity, v.AvailableWeight, 1e-9, v.Plate)
			assert.False(t, v.Favourite)
		}
	})

	t.Run("orders start unassigned and are anchored on today", func(t *testing.T) {
		first := seed.Orders[0]
		assert.Nil(t, first.Vehicle)
		assert.False(t, first.Completed)
		assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), first.Date)
	})

	t.Run("opens as a valid store", func(t *testing.T) {
		store, err := memory.Open(t.Context(), newBlobs(), seed)
		require.NoError(t, err)
		assert.True(t, store.Seeded())
	})
}

func TestParseSeed(t *testing.T) {
	t.Run("rejects a malformed time", func(t *testing.T) {
		raw := []byte("orders:\n  - id: x\n    time: noon\n")

		_, err := memory.ParseSeed(raw, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("applies the day offset", func(t *testing.T) {
		raw := []byte("orders:\n  - id: x\n    dayOffset: 2\n    time: \"23:30\"\n")

		seed, err := memory.ParseSeed(raw, now)

		require.NoError(t, err)
		require.Len(t, seed.Orders, 1)
		assert.Equal(t, time.Date(2026, 3, 12, 23, 30, 0, 0, time.UTC), seed.Orders[0].Date)
	})
}

func newBlobs() *blobstore.MemoryStore {
	return blobstore.NewMemoryStore()
}
