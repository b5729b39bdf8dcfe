package vehicle_test

import (
	"math"
	"testing"

	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicle(t *testing.T) {
	t.Run("should start empty and not favourite", func(t *testing.T) {
		v, err := vehicle.NewVehicle(" 12-AB-34 ", 1000)

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.Equal(t, "12-AB-34", v.Plate())
		assert.InDelta(t, 1000, v.MaxWeightCapacity(), 1e-9)
		assert.InDelta(t, 1000, v.AvailableWeight(), 1e-9)
		assert.False(t, v.IsFavourite())
	})

	tests := []struct {
		name     string
		plate    string
		capacity float64
		wantErr  error
	}{
		{name: "blank plate", plate: " ", capacity: 1000, wantErr: vehicle.ErrPlateIsRequired},
		{name: "zero capacity", plate: "12-AB-34", capacity: 0, wantErr: errs.ErrValueIsInvalid},
		{name: "negative capacity", plate: "12-AB-34", capacity: -5, wantErr: errs.ErrValueIsInvalid},
		{name: "infinite capacity", plate: "12-AB-34", capacity: math.Inf(1), wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run("should fail with "+tt.name, func(t *testing.T) {
			v, err := vehicle.NewVehicle(tt.plate, tt.capacity)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, v)
		})
	}
}

func TestRestoreVehicle(t *testing.T) {
	t.Run("keeps available above max", func(t *testing.T) {
		v, err := vehicle.RestoreVehicle("12-AB-34", 1000, 1300, true)

		require.NoError(t, err)
		assert.InDelta(t, 1300, v.AvailableWeight(), 1e-9)
		assert.True(t, v.IsFavourite())
	})

	t.Run("rejects NaN available", func(t *testing.T) {
		_, err := vehicle.RestoreVehicle("12-AB-34", 1000, math.NaN(), false)

		require.Error(t, err)
	})
}

func TestVehicle_Validate(t *testing.T) {
	var nilVehicle *vehicle.Vehicle
	assert.ErrorIs(t, nilVehicle.Validate(), vehicle.ErrVehicleIsNotConstructed)
	assert.ErrorIs(t, (&vehicle.Vehicle{}).Validate(), vehicle.ErrVehicleIsNotConstructed)
}

func TestVehicle_Reserve(t *testing.T) {
	t.Run("should take weight out of the budget", func(t *testing.T) {
		// Given
		v, _ := vehicle.NewVehicle("12-AB-34", 1000)

		// When
		err := v.Reserve(300)

		// Then
		require.NoError(t, err)
		assert.InDelta(t, 700, v.AvailableWeight(), 1e-9)
	})

	t.Run("should accept exactly the available weight", func(t *testing.T) {
		v, _ := vehicle.NewVehicle("12-AB-34", 1000)

		require.NoError(t, v.Reserve(1000))
		assert.InDelta(t, 0, v.AvailableWeight(), 1e-9)
	})

	t.Run("should fail and leave the budget unchanged when over capacity", func(t *testing.T) {
		// Given
		v, _ := vehicle.NewVehicle("12-AB-34", 1000)
		require.NoError(t, v.Reserve(300))

		// When
		err := v.Reserve(800)

		// Then
		require.ErrorIs(t, err, errs.ErrCapacityExceeded)
		var capErr *errs.CapacityExceededError
		require.ErrorAs(t, err, &capErr)
		assert.InDelta(t, 700.0, capErr.Available, 1e-9)
		assert.InDelta(t, 800.0, capErr.Requested, 1e-9)
		assert.InDelta(t, 700, v.AvailableWeight(), 1e-9)
	})

	t.Run("should reject non-positive weight", func(t *testing.T) {
		v, _ := vehicle.NewVehicle("12-AB-34", 1000)

		require.ErrorIs(t, v.Reserve(0), errs.ErrValueIsInvalid)
		assert.InDelta(t, 1000, v.AvailableWeight(), 1e-9)
	})
}

func TestVehicle_Release(t *testing.T) {
	t.Run("should restore reserved weight", func(t *testing.T) {
		v, _ := vehicle.NewVehicle("12-AB-34", 1000)
		require.NoError(t, v.Reserve(300))

		require.NoError(t, v.Release(300))

		assert.InDelta(t, 1000, v.AvailableWeight(), 1e-9)
	})

	t.Run("double release exceeds the maximum", func(t *testing.T) {
		v, _ := vehicle.NewVehicle("12-AB-34", 1000)
		require.NoError(t, v.Reserve(300))

		require.NoError(t, v.Release(300))
		require.NoError(t, v.Release(300))

		assert.InDelta(t, 1300, v.AvailableWeight(), 1e-9)
	})
}

func TestVehicle_CanCarry(t *testing.T) {
	v, _ := vehicle.NewVehicle("12-AB-34", 500)

	assert.True(t, v.CanCarry(499.9))
	assert.True(t, v.CanCarry(500))
	assert.False(t, v.CanCarry(500.1))
	assert.NoError(t, v.EnsureCanCarry(500))
	assert.ErrorIs(t, v.EnsureCanCarry(501), errs.ErrCapacityExceeded)
}

func TestVehicle_ToggleFavourite(t *testing.T) {
	v, _ := vehicle.NewVehicle("12-AB-34", 500)

	assert.True(t, v.ToggleFavourite())
	assert.True(t, v.IsFavourite())
	assert.False(t, v.ToggleFavourite())
	assert.False(t, v.IsFavourite())
}
