package kernel

import (
	"errors"
	"fmt"

	"courierops/internal/pkg/errs"
	"courierops/internal/pkg/guard"
)

const (
	// LocationMinLatitude is the minimum valid latitude in degrees.
	LocationMinLatitude float64 = -90
	// LocationMaxLatitude is the maximum valid latitude in degrees.
	LocationMaxLatitude float64 = 90
	// LocationMinLongitude is the minimum valid longitude in degrees.
	LocationMinLongitude float64 = -180
	// LocationMaxLongitude is the maximum valid longitude in degrees.
	LocationMaxLongitude float64 = 180
)

// ErrLocationIsNotConstructed is returned when attempting to use an
// improperly initialized Location. Locations must be created using
// NewLocation or OriginLocation to ensure validity.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or OriginLocation constructors")

// Location represents a geographic point with validated coordinates.
// Location is an immutable value object; the zero value is invalid and will
// fail validation - use constructors to create instances.
//
// It is used for driver positions and for parcel pickup and dropoff points.
//
// Example:
//
//	loc, err := kernel.NewLocation(-17.8292, 31.0522)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Location: %s", loc) // Output: Location(-17.8292,31.0522)
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation creates a new Location with the specified coordinates.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
// Returns an error if either coordinate is outside the valid bounds.
func NewLocation(latitude, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// OriginLocation creates the default location at coordinates (0, 0).
// Newly registered drivers start at the origin until they report a position.
func OriginLocation() Location {
	loc, _ := NewLocation(0, 0)
	return loc
}

// Validate checks if the Location was properly constructed using a
// constructor. The zero value of Location fails this validation.
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

// IsEqual compares two locations by coordinates.
func (l Location) IsEqual(other Location) bool {
	return l.latitude == other.latitude && l.longitude == other.longitude
}

// String returns a human-readable representation of the location.
func (l Location) String() string {
	return fmt.Sprintf("Location(%g,%g)", l.latitude, l.longitude)
}

func (l *Location) setLatitude(latitude float64) error {
	if latitude < LocationMinLatitude || latitude > LocationMaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LocationMinLatitude, LocationMaxLatitude)
	}
	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if longitude < LocationMinLongitude || longitude > LocationMaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LocationMinLongitude, LocationMaxLongitude)
	}
	l.longitude = longitude
	return nil
}
