package openapi

import "time"

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Message is the body of a successful mutation.
type Message struct {
	Message string `json:"message"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Destination struct {
	Address     string      `json:"address"`
	City        string      `json:"city"`
	Country     string      `json:"country"`
	PostalCode  string      `json:"postalCode"`
	Coordinates Coordinates `json:"coordinates"`
}

type Vehicle struct {
	Plate             string  `json:"plate"`
	MaxWeightCapacity float64 `json:"maxWeightCapacity"`
	AvailableWeight   float64 `json:"availableWeight"`
	Favourite         bool    `json:"favourite"`
}

// Order embeds the live vehicle when the order is assigned.
type Order struct {
	Id           string      `json:"id"`
	Weight       float64     `json:"weight"`
	Destination  Destination `json:"destination"`
	Date         time.Time   `json:"date"`
	Observations *string     `json:"observations,omitempty"`
	VehiclePlate *string     `json:"vehiclePlate"`
	Vehicle      *Vehicle    `json:"vehicle"`
	Completed    bool        `json:"completed"`
	Status       string      `json:"status"`
}

type NewOrder struct {
	Id           *string     `json:"id,omitempty"`
	Weight       float64     `json:"weight"`
	Destination  Destination `json:"destination"`
	Date         time.Time   `json:"date"`
	Observations *string     `json:"observations,omitempty"`
}

type ObservationUpdate struct {
	Observations *string `json:"observations"`
}

type AssignmentRequest struct {
	Plate string `json:"plate"`
}

type FavouriteResult struct {
	Message   string `json:"message"`
	Favourite bool   `json:"favourite"`
}

type Notification struct {
	Id           string    `json:"id"`
	Type         string    `json:"type"`
	Message      string    `json:"message"`
	OrderId      string    `json:"orderId"`
	VehiclePlate string    `json:"vehiclePlate"`
	CreatedAt    time.Time `json:"createdAt"`
}
