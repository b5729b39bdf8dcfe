package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/ports"
)

// VehicleView is the read model of a vehicle.
type VehicleView struct {
	Plate             string
	MaxWeightCapacity float64
	AvailableWeight   float64
	Favourite         bool
}

// DestinationView is the read model of an order destination.
type DestinationView struct {
	Address    string
	City       string
	Country    string
	PostalCode string
	Latitude   float64
	Longitude  float64
}

// OrderView is the read model of an order.
//
// VehiclePlate is set whenever the order references a vehicle. Vehicle holds
// the live vehicle for that plate, or nil if the plate no longer resolves.
type OrderView struct {
	ID           string
	Weight       float64
	Destination  DestinationView
	Date         time.Time
	Observations *string
	VehiclePlate *string
	Vehicle      *VehicleView
	Completed    bool
	Status       string
}

func newVehicleView(v *vehicle.Vehicle) VehicleView {
	return VehicleView{
		Plate:             v.Plate(),
		MaxWeightCapacity: v.MaxWeightCapacity(),
		AvailableWeight:   v.AvailableWeight(),
		Favourite:         v.IsFavourite(),
	}
}

func newOrderView(o *order.Order, fleet map[string]VehicleView) OrderView {
	dest := o.Destination()
	view := OrderView{
		ID:     o.ID().String(),
		Weight: o.Weight(),
		Destination: DestinationView{
			Address:    dest.Address(),
			City:       dest.City(),
			Country:    dest.Country(),
			PostalCode: dest.PostalCode(),
			Latitude:   dest.Coordinates().Latitude(),
			Longitude:  dest.Coordinates().Longitude(),
		},
		Date:         o.Date(),
		Observations: o.Observations(),
		Completed:    o.IsCompleted(),
		Status:       o.Status().String(),
	}

	if plate, ok := o.VehiclePlate(); ok {
		view.VehiclePlate = &plate
		if v, found := fleet[plate]; found {
			view.Vehicle = &v
		}
	}

	return view
}

// orderViews resolves vehicles once for the whole batch.
func orderViews(ctx context.Context, vehicles ports.VehicleReader, orders []*order.Order) ([]OrderView, error) {
	fleet, err := fleetIndex(ctx, vehicles)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o, fleet))
	}
	return views, nil
}

func fleetIndex(ctx context.Context, vehicles ports.VehicleReader) (map[string]VehicleView, error) {
	all, err := vehicles.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}

	fleet := make(map[string]VehicleView, len(all))
	for _, v := range all {
		fleet[v.Plate()] = newVehicleView(v)
	}
	return fleet, nil
}
