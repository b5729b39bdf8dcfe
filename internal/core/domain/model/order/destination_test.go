package order_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDestination(t *testing.T) {
	coords := kernel.MustNewCoordinates(48.8566, 2.3522)

	t.Run("trims text fields", func(t *testing.T) {
		d, err := order.NewDestination(" 5 Avenue Anatole France ", " Paris ", " France ", " 75007 ", coords)

		require.NoError(t, err)
		assert.Equal(t, "5 Avenue Anatole France", d.Address())
		assert.Equal(t, "Paris", d.City())
		assert.Equal(t, "France", d.Country())
		assert.Equal(t, "75007", d.PostalCode())
		assert.Equal(t, coords, d.Coordinates())
		assert.Equal(t, "Paris, France", d.Label())
	})

	t.Run("reports every missing field", func(t *testing.T) {
		_, err := order.NewDestination("", " ", "", "", kernel.Coordinates{})

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrAddressIsRequired)
		assert.ErrorIs(t, err, order.ErrCityIsRequired)
		assert.ErrorIs(t, err, order.ErrCountryIsRequired)
		assert.ErrorIs(t, err, order.ErrPostalCodeIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		assert.Error(t, order.Destination{}.Validate())
	})
}

func TestDestination_Matches(t *testing.T) {
	d, err := order.NewDestination("Karl-Liebknecht-Str. 1", "Berlin", "Germany", "10178", kernel.MustNewCoordinates(52.52, 13.405))
	require.NoError(t, err)

	assert.True(t, d.Matches("berl"))
	assert.True(t, d.Matches("GERMANY"))
	assert.True(t, d.Matches(""))
	assert.False(t, d.Matches("Porto"))
	assert.False(t, d.Matches("Liebknecht"), "address is not searched")
}
