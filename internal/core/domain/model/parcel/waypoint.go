package parcel

import (
	"errors"

	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/pkg/errs"
	"courierops/internal/pkg/guard"
)

// ErrWaypointIsNotConstructed is returned when using an improperly
// initialized Waypoint. Waypoints must be created via NewWaypoint.
var ErrWaypointIsNotConstructed = errs.NewValueIsRequiredError(
	"waypoint must be created via NewWaypoint constructor")

// Waypoint is an immutable value object describing one end of a delivery:
// a human-readable name, a street address, and geographic coordinates.
type Waypoint struct { //nolint:recvcheck //using for validation
	name     string
	address  string
	location kernel.Location

	guard guard.ConstructorGuard
}

// NewWaypoint creates a validated Waypoint.
// Name and address are required; the location must be constructed.
func NewWaypoint(name, address string, location kernel.Location) (Waypoint, error) {
	w := Waypoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setName(name),
		w.setAddress(address),
		w.setLocation(location),
	); err != nil {
		return Waypoint{}, err
	}

	return w, nil
}

// Validate checks if the Waypoint was properly constructed.
func (w Waypoint) Validate() error {
	return w.guard.Validate(ErrWaypointIsNotConstructed)
}

// Name returns the waypoint's display name.
func (w Waypoint) Name() string {
	return w.name
}

// Address returns the waypoint's street address.
func (w Waypoint) Address() string {
	return w.address
}

// Location returns the waypoint's coordinates.
func (w Waypoint) Location() kernel.Location {
	return w.location
}

func (w *Waypoint) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("waypointName")
	}
	w.name = name
	return nil
}

func (w *Waypoint) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("waypointAddress")
	}
	w.address = address
	return nil
}

func (w *Waypoint) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	w.location = location
	return nil
}
