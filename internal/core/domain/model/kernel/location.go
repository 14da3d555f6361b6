package kernel

import (
	"errors"
	"fmt"
	"math"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0

	// earthRadiusKm is the mean Earth radius used for distance calculations.
	earthRadiusKm = 6371.0
)

// ErrLocationIsNotConstructed is returned when attempting to use an
// improperly initialized Location. Locations must be created via NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location represents a geographic point with validated coordinates.
// It is an immutable value object; the zero value is invalid and fails
// validation.
//
// Location is used both for order destinations and for vendor addresses,
// and provides the distance math behind vendor delivery zones.
//
// Example:
//
//	loc, err := kernel.NewLocation(52.37, 4.89)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(loc) // Output: Location(52.370000,4.890000)
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation creates a Location with the given coordinates in degrees.
// Latitude must lie within [LatitudeMin, LatitudeMax] and longitude within
// [LongitudeMin, LongitudeMax]; otherwise a ValueIsOutOfRangeError is
// returned.
func NewLocation(latitude float64, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate returns ErrLocationIsNotConstructed for the zero value.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// IsEqual reports whether two locations hold the same coordinates.
func (l Location) IsEqual(other Location) bool {
	return l.latitude == other.latitude && l.longitude == other.longitude
}

// DistanceTo returns the great-circle distance to another location in
// kilometers, computed with the haversine formula.
func (l Location) DistanceTo(other Location) (float64, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}
	if err := other.Validate(); err != nil {
		return 0, err
	}

	lat1 := l.latitude * math.Pi / 180
	lat2 := other.latitude * math.Pi / 180
	dLat := (other.latitude - l.latitude) * math.Pi / 180
	dLon := (other.longitude - l.longitude) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// IsWithinRadius reports whether the location lies within radiusKm
// kilometers of center. Used to evaluate vendor delivery zones.
func (l Location) IsWithinRadius(center Location, radiusKm float64) (bool, error) {
	distance, err := l.DistanceTo(center)
	if err != nil {
		return false, err
	}
	return distance <= radiusKm, nil
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("Location(%f,%f)", l.latitude, l.longitude)
}

func (l *Location) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}
	l.longitude = longitude
	return nil
}
