package queries_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVehicleScheduleQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	lisbon := kernel.MustNewCoordinates(38.7169, -9.1399)
	ranker, err := services.NewDistanceRanker(lisbon)
	require.NoError(t, err)

	store := fixture(t)
	h := queries.NewGetVehicleScheduleQueryHandler(store, store, ranker)

	t.Run("same day stops, nearest first", func(t *testing.T) {
		// o3 (Sintra) is later in the day but closer to Lisbon than o1 (Porto)
		q, err := queries.NewGetVehicleScheduleQuery("AA", time.Date(2026, 5, 4, 23, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		got, err := h.Handle(ctx, q)

		require.NoError(t, err)
		assert.Equal(t, []string{"o3", "o1"}, viewIDs(got, orderID))
	})

	t.Run("other day", func(t *testing.T) {
		q, _ := queries.NewGetVehicleScheduleQuery("AA", time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC))

		got, err := h.Handle(ctx, q)

		require.NoError(t, err)
		assert.Equal(t, []string{"o4"}, viewIDs(got, orderID))
	})

	t.Run("unknown vehicle has no stops", func(t *testing.T) {
		q, _ := queries.NewGetVehicleScheduleQuery("NOPE", time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC))

		got, err := h.Handle(ctx, q)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("dangling plate still lists its stops", func(t *testing.T) {
		q, _ := queries.NewGetVehicleScheduleQuery("GONE", time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC))

		got, err := h.Handle(ctx, q)

		require.NoError(t, err)
		assert.Equal(t, []string{"o5"}, viewIDs(got, orderID))
	})

	t.Run("requires plate and day", func(t *testing.T) {
		_, err := queries.NewGetVehicleScheduleQuery("", time.Time{})

		require.ErrorIs(t, err, queries.ErrPlateIsRequired)
		require.ErrorIs(t, err, order.ErrDateIsRequired)
	})
}
