package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

func TestNewCoordinates(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
	}{
		{name: "valid coordinates", latitude: 41.1579, longitude: -8.6291},
		{name: "min bounds", latitude: kernel.LatitudeMin, longitude: kernel.LongitudeMin},
		{name: "max bounds", latitude: kernel.LatitudeMax, longitude: kernel.LongitudeMax},
		{name: "latitude too small", latitude: -90.1, longitude: 0, wantErr: true},
		{name: "latitude too large", latitude: 90.1, longitude: 0, wantErr: true},
		{name: "longitude too small", latitude: 0, longitude: -180.5, wantErr: true},
		{name: "longitude too large", latitude: 0, longitude: 181, wantErr: true},
		{name: "NaN latitude", latitude: math.NaN(), longitude: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := kernel.NewCoordinates(tt.latitude, tt.longitude)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Error(t, c.Validate())
				return
			}

			require.NoError(t, err)
			require.NoError(t, c.Validate())
			assert.InDelta(t, tt.latitude, c.Latitude(), 1e-9)
			assert.InDelta(t, tt.longitude, c.Longitude(), 1e-9)
		})
	}

	t.Run("both components invalid are reported together", func(t *testing.T) {
		_, err := kernel.NewCoordinates(100, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestCoordinates_ZeroValue(t *testing.T) {
	var c kernel.Coordinates

	require.ErrorIs(t, c.Validate(), errs.ErrValueIsRequired)
}

func TestCoordinates_DistanceTo(t *testing.T) {
	t.Run("one degree of longitude on the equator", func(t *testing.T) {
		origin := kernel.MustNewCoordinates(0, 0)
		dest := kernel.MustNewCoordinates(0, 1)

		d, err := origin.DistanceTo(dest)

		require.NoError(t, err)
		assert.InDelta(t, 111.19, d, 0.01)
	})

	t.Run("distance to self is zero", func(t *testing.T) {
		c := kernel.MustNewCoordinates(38.7169, -9.1399)

		d, err := c.DistanceTo(c)

		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-9)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		lisbon := kernel.MustNewCoordinates(38.7169, -9.1399)
		madrid := kernel.MustNewCoordinates(40.4168, -3.7038)

		d1, err := lisbon.DistanceTo(madrid)
		require.NoError(t, err)
		d2, err := madrid.DistanceTo(lisbon)
		require.NoError(t, err)

		assert.InDelta(t, d1, d2, 1e-9)
		assert.InDelta(t, 503, d1, 5)
	})

	t.Run("zero value coordinates are rejected", func(t *testing.T) {
		_, err := kernel.MustNewCoordinates(0, 0).DistanceTo(kernel.Coordinates{})

		require.Error(t, err)
	})
}

func TestMustNewCoordinates_PanicsOnInvalidInput(t *testing.T) {
	assert.Panics(t, func() { kernel.MustNewCoordinates(95, 0) })
}
