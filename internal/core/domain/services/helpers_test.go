package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/require"
)

type orderSpec struct {
	id           string
	weight       float64
	city         string
	country      string
	lat, lon     float64
	date         time.Time
	observations *string
	plate        string
	completed    bool
}

func buildOrder(t *testing.T, s orderSpec) *order.Order {
	t.Helper()

	if s.id == "" {
		s.id = kernel.NewID().String()
	}
	if s.weight == 0 {
		s.weight = 100
	}
	if s.city == "" {
		s.city = "Lisbon"
	}
	if s.country == "" {
		s.country = "Portugal"
	}
	if s.date.IsZero() {
		s.date = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	}

	id, err := kernel.IDFromString(s.id)
	require.NoError(t, err)
	coords, err := kernel.NewCoordinates(s.lat, s.lon)
	require.NoError(t, err)
	dest, err := order.NewDestination("Main street 1", s.city, s.country, "1000-001", coords)
	require.NoError(t, err)

	var plate *string
	if s.plate != "" {
		plate = &s.plate
	}
	o, err := order.RestoreOrder(id, s.weight, dest, s.date, s.observations, plate, s.completed)
	require.NoError(t, err)
	return o
}

func buildVehicle(t *testing.T, plate string, capacity float64) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(plate, capacity)
	require.NoError(t, err)
	return v
}

func ids(orders []*order.Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.ID().String()
	}
	return out
}

func text(s string) *string {
	return &s
}
