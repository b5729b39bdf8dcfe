package kernel

import (
	"errors"
	"fmt"
	"math"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	// LatitudeMin is the southernmost valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the northernmost valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the westernmost valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the easternmost valid longitude in degrees.
	LongitudeMax = 180.0

	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0
)

// ErrCoordinatesAreNotConstructed is returned when attempting to use Coordinates
// that were not built through NewCoordinates.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates constructor")

// Coordinates is an immutable latitude/longitude pair in decimal degrees.
// The zero value is invalid and fails Validate.
//
// Example:
//
//	lisbon, err := kernel.NewCoordinates(38.7169, -9.1399)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(lisbon) // Coordinates(38.716900,-9.139900)
type Coordinates struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinates creates Coordinates after checking both components against
// their valid ranges. Both violations are reported together.
//
// Parameters:
//   - latitude: degrees in [LatitudeMin, LatitudeMax]
//   - longitude: degrees in [LongitudeMin, LongitudeMax]
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	c := Coordinates{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setLatitude(latitude), c.setLongitude(longitude)); err != nil {
		return Coordinates{}, err
	}

	return c, nil
}

// MustNewCoordinates is NewCoordinates for compile-time constants; it panics
// on invalid input.
func MustNewCoordinates(latitude, longitude float64) Coordinates {
	c, err := NewCoordinates(latitude, longitude)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate reports whether the Coordinates were built by a constructor.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

// Latitude returns the latitude in degrees.
func (c Coordinates) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in degrees.
func (c Coordinates) Longitude() float64 {
	return c.longitude
}

// String implements fmt.Stringer.
func (c Coordinates) String() string {
	return fmt.Sprintf("Coordinates(%f,%f)", c.latitude, c.longitude)
}

// DistanceTo returns the great-circle distance in kilometres between c and
// other using the haversine formula with EarthRadiusKm.
//
// Both values must be constructed; otherwise the validation error is
// returned.
//
// Example:
//
//	origin := kernel.MustNewCoordinates(0, 0)
//	dest := kernel.MustNewCoordinates(0, 1)
//	km, _ := origin.DistanceTo(dest) // ≈ 111.19
func (c Coordinates) DistanceTo(other Coordinates) (float64, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	return haversine(c.latitude, c.longitude, other.latitude, other.longitude), nil
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func (c *Coordinates) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	c.latitude = latitude
	return nil
}

func (c *Coordinates) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}
	c.longitude = longitude
	return nil
}
