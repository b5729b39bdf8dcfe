package order

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Destination errors.
var (
	ErrAddressIsRequired    = errs.NewValueIsRequiredError("address")
	ErrCityIsRequired       = errs.NewValueIsRequiredError("city")
	ErrCountryIsRequired    = errs.NewValueIsRequiredError("country")
	ErrPostalCodeIsRequired = errs.NewValueIsRequiredError("postal code")
)

// Destination is the delivery address of an order. It is a value object;
// two destinations with the same fields are interchangeable.
type Destination struct {
	address     string
	city        string
	country     string
	postalCode  string
	coordinates kernel.Coordinates
}

// NewDestination builds a Destination. Text fields are trimmed and must be
// non-empty; coordinates must come from kernel.NewCoordinates.
func NewDestination(address, city, country, postalCode string, coordinates kernel.Coordinates) (Destination, error) {
	d := Destination{
		address:    strings.TrimSpace(address),
		city:       strings.TrimSpace(city),
		country:    strings.TrimSpace(country),
		postalCode: strings.TrimSpace(postalCode),
	}

	var errList []error
	if d.address == "" {
		errList = append(errList, ErrAddressIsRequired)
	}
	if d.city == "" {
		errList = append(errList, ErrCityIsRequired)
	}
	if d.country == "" {
		errList = append(errList, ErrCountryIsRequired)
	}
	if d.postalCode == "" {
		errList = append(errList, ErrPostalCodeIsRequired)
	}
	if err := coordinates.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return Destination{}, err
	}

	d.coordinates = coordinates
	return d, nil
}

// Validate fails for the zero value.
func (d Destination) Validate() error {
	return d.coordinates.Validate()
}

func (d Destination) Address() string {
	return d.address
}

func (d Destination) City() string {
	return d.city
}

func (d Destination) Country() string {
	return d.country
}

func (d Destination) PostalCode() string {
	return d.postalCode
}

func (d Destination) Coordinates() kernel.Coordinates {
	return d.coordinates
}

// Label returns "city, country", the form used for display and sorting.
func (d Destination) Label() string {
	return d.city + ", " + d.country
}

// Matches reports whether text occurs, case-insensitively, in the city or
// the country.
func (d Destination) Matches(text string) bool {
	needle := strings.ToLower(text)
	return strings.Contains(strings.ToLower(d.city), needle) ||
		strings.Contains(strings.ToLower(d.country), needle)
}
