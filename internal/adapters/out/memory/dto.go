package memory

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
)

// OrderDTO is the persisted shape of an order in the "orders" blob.
type OrderDTO struct {
	ID           string         `json:"id"`
	Weight       float64        `json:"weight"`
	Destination  DestinationDTO `json:"destination"`
	Date         time.Time      `json:"date"`
	Observations *string        `json:"observations,omitempty"`
	Vehicle      *VehicleRefDTO `json:"vehicle"`
	Completed    bool           `json:"completed"`
}

// DestinationDTO is the persisted shape of an order destination.
type DestinationDTO struct {
	City        string         `json:"city"`
	Country     string         `json:"country"`
	Coordinates CoordinatesDTO `json:"coordinates"`
	PostalCode  string         `json:"postalCode"`
	Address     string         `json:"address"`
}

type CoordinatesDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// VehicleRefDTO references the assigned vehicle by plate. Blobs that embed a
// full vehicle snapshot decode into it as well; the extra fields are ignored.
type VehicleRefDTO struct {
	Plate string `json:"plate"`
}

// VehicleDTO is the persisted shape of a vehicle in the "vehicles" blob.
type VehicleDTO struct {
	Plate             string  `json:"plate"`
	MaxWeightCapacity float64 `json:"maxWeightCapacity"`
	AvailableWeight   float64 `json:"availableWeight"`
	Favourite         bool    `json:"favourite"`
}

func orderFromDomain(o *order.Order) OrderDTO {
	dest := o.Destination()
	coords := dest.Coordinates()

	dto := OrderDTO{
		ID:     o.ID().String(),
		Weight: o.Weight(),
		Destination: DestinationDTO{
			City:    dest.City(),
			Country: dest.Country(),
			Coordinates: CoordinatesDTO{
				Latitude:  coords.Latitude(),
				Longitude: coords.Longitude(),
			},
			PostalCode: dest.PostalCode(),
			Address:    dest.Address(),
		},
		Date:         o.Date().UTC(),
		Observations: o.Observations(),
		Completed:    o.IsCompleted(),
	}
	if plate, ok := o.VehiclePlate(); ok {
		dto.Vehicle = &VehicleRefDTO{Plate: plate}
	}
	return dto
}

func orderToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	coords, err := kernel.NewCoordinates(dto.Destination.Coordinates.Latitude, dto.Destination.Coordinates.Longitude)
	if err != nil {
		return nil, err
	}

	dest, err := order.NewDestination(
		dto.Destination.Address,
		dto.Destination.City,
		dto.Destination.Country,
		dto.Destination.PostalCode,
		coords,
	)
	if err != nil {
		return nil, err
	}

	var plate *string
	if dto.Vehicle != nil {
		plate = &dto.Vehicle.Plate
	}

	return order.RestoreOrder(id, dto.Weight, dest, dto.Date, dto.Observations, plate, dto.Completed)
}

func vehicleFromDomain(v *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		Plate:             v.Plate(),
		MaxWeightCapacity: v.MaxWeightCapacity(),
		AvailableWeight:   v.AvailableWeight(),
		Favourite:         v.IsFavourite(),
	}
}

func vehicleToDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	return vehicle.RestoreVehicle(dto.Plate, dto.MaxWeightCapacity, dto.AvailableWeight, dto.Favourite)
}

// ordersToDomain converts a whole collection, failing on the first broken
// record.
func ordersToDomain(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := orderToDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func vehiclesToDomain(dtos []VehicleDTO) ([]*vehicle.Vehicle, error) {
	vehicles := make([]*vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		v, err := vehicleToDomain(dto)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}
