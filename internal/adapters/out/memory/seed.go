package memory

import (
	_ "embed"
	"fmt"
	"time"

	"logistics/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the initial content installed when no persisted collections are
// found.
type Seed struct {
	Orders   []OrderDTO
	Vehicles []VehicleDTO
}

type seedDocument struct {
	Vehicles []seedVehicle `yaml:"vehicles"`
	Orders   []seedOrder   `yaml:"orders"`
}

type seedVehicle struct {
	Plate             string  `yaml:"plate"`
	MaxWeightCapacity float64 `yaml:"maxWeightCapacity"`
}

type seedOrder struct {
	ID           string  `yaml:"id"`
	Weight       float64 `yaml:"weight"`
	Address      string  `yaml:"address"`
	City         string  `yaml:"city"`
	Country      string  `yaml:"country"`
	PostalCode   string  `yaml:"postalCode"`
	Latitude     float64 `yaml:"latitude"`
	Longitude    float64 `yaml:"longitude"`
	DayOffset    int     `yaml:"dayOffset"`
	Time         string  `yaml:"time"`
	Observations *string `yaml:"observations"`
}

// DefaultSeed returns the embedded fleet and orders, with order dates
// anchored on the UTC day of now.
func DefaultSeed(now time.Time) (Seed, error) {
	return ParseSeed(defaultSeed, now)
}

// ParseSeed decodes a seed document. Every vehicle starts empty and not
// favourite; every order starts unassigned and not completed.
func ParseSeed(raw []byte, now time.Time) (Seed, error) {
	var doc seedDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Seed{}, errs.NewValueIsInvalidErrorWithCause("seed", err)
	}

	y, m, d := now.UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	seed := Seed{
		Orders:   make([]OrderDTO, 0, len(doc.Orders)),
		Vehicles: make([]VehicleDTO, 0, len(doc.Vehicles)),
	}

	for _, v := range doc.Vehicles {
		seed.Vehicles = append(seed.Vehicles, VehicleDTO{
			Plate:             v.Plate,
			MaxWeightCapacity: v.MaxWeightCapacity,
			AvailableWeight:   v.MaxWeightCapacity,
		})
	}

	for _, o := range doc.Orders {
		clock, err := time.Parse("15:04", o.Time)
		if err != nil {
			return Seed{}, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("seed order %s time", o.ID), err)
		}
		date := today.AddDate(0, 0, o.DayOffset).Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute)

		seed.Orders = append(seed.Orders, OrderDTO{
			ID:     o.ID,
			Weight: o.Weight,
			Destination: DestinationDTO{
				City:        o.City,
				Country:     o.Country,
				Coordinates: CoordinatesDTO{Latitude: o.Latitude, Longitude: o.Longitude},
				PostalCode:  o.PostalCode,
				Address:     o.Address,
			},
			Date:         date,
			Observations: o.Observations,
		})
	}

	return seed, nil
}
