package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	orders   []*order.Order
	vehicles []*vehicle.Vehicle
}

func (f *fakeReader) ListOrders(context.Context) ([]*order.Order, error) {
	return f.orders, nil
}

func (f *fakeReader) FindOrder(_ context.Context, id kernel.ID) (*order.Order, error) {
	for _, o := range f.orders {
		if o.ID().IsEqual(id) {
			return o, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("order", id.String())
}

func (f *fakeReader) ListVehicles(context.Context) ([]*vehicle.Vehicle, error) {
	return f.vehicles, nil
}

func (f *fakeReader) FindVehicle(_ context.Context, plate string) (*vehicle.Vehicle, error) {
	for _, v := range f.vehicles {
		if v.Plate() == plate {
			return v, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("vehicle", plate)
}

type noLatency struct{}

func (noLatency) Wait(context.Context) error { return nil }

type cancelledLatency struct{}

func (cancelledLatency) Wait(context.Context) error { return context.Canceled }

func mkOrder(t *testing.T, id, city, country string, lat, lon float64, day time.Time, plate string) *order.Order {
	t.Helper()
	orderID, err := kernel.IDFromString(id)
	require.NoError(t, err)
	dest, err := order.NewDestination("Street 1", city, country, "0000", kernel.MustNewCoordinates(lat, lon))
	require.NoError(t, err)
	var p *string
	if plate != "" {
		p = &plate
	}
	o, err := order.RestoreOrder(orderID, 100, dest, day, nil, p, false)
	require.NoError(t, err)
	return o
}

func mkVehicle(t *testing.T, plate string, favourite bool) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.RestoreVehicle(plate, 1000, 800, favourite)
	require.NoError(t, err)
	return v
}

func fixture(t *testing.T) *fakeReader {
	t.Helper()
	day := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	return &fakeReader{
		orders: []*order.Order{
			mkOrder(t, "o1", "Porto", "Portugal", 41.1579, -8.6291, day, "AA"),
			mkOrder(t, "o2", "Madrid", "Spain", 40.4168, -3.7038, day, ""),
			mkOrder(t, "o3", "Sintra", "Portugal", 38.8029, -9.3817, day.Add(3*time.Hour), "AA"),
			mkOrder(t, "o4", "Faro", "Portugal", 37.0194, -7.9322, day.AddDate(0, 0, 1), "AA"),
			mkOrder(t, "o5", "Lyon", "France", 45.764, 4.8357, day, "GONE"),
		},
		vehicles: []*vehicle.Vehicle{
			mkVehicle(t, "AA", false),
			mkVehicle(t, "BB", true),
			mkVehicle(t, "CC", false),
		},
	}
}

func viewIDs[T any](views []T, id func(T) string) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = id(v)
	}
	return out
}
