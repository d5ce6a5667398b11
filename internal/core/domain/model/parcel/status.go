package parcel

import (
	"fmt"

	"courierops/internal/pkg/errs"
)

// Status represents the delivery state of a parcel.
//
// The state machine is forward-only:
//
//	pending ──> accepted ──> picked_up ──> in_transit ──> delivered
//	    │           │            │             │
//	    └───────────┴────────────┴─────────────┴──> cancelled
//
// delivered and cancelled are terminal; re-entering a terminal state fails.
// A parcel holds a driver reference exactly while its status is accepted,
// picked_up, in_transit, or delivered.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status: the parcel awaits a driver.
	StatusPending

	// StatusAccepted indicates a driver has taken the job.
	// Entering this status sets the driver reference and assignedAt.
	StatusAccepted

	// StatusPickedUp indicates the driver has collected the parcel.
	StatusPickedUp

	// StatusInTransit indicates the parcel is on its way to the dropoff.
	StatusInTransit

	// StatusDelivered is the successful terminal state. Entering it requires
	// the final price and persists the financial breakdown.
	StatusDelivered

	// StatusCancelled is the unsuccessful terminal state, reachable from any
	// non-terminal status. It carries a cancellation reason.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusAccepted:  "accepted",
		StatusPickedUp:  "picked_up",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusAccepted:  "accepted",
		StatusPickedUp:  "picked_up",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// getForwardEdges returns the single forward successor for each non-terminal
// status. Cancellation is handled separately since it is reachable from all
// non-terminal statuses.
func getForwardEdges() map[Status]Status {
	return map[Status]Status{
		StatusPending:   StatusAccepted,
		StatusAccepted:  StatusPickedUp,
		StatusPickedUp:  StatusInTransit,
		StatusInTransit: StatusDelivered,
	}
}

// StatusFromString parses a status from its string representation.
// Returns an error for values outside the six recognized delivery states.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid parcel status", s))
}

// Validate checks if the Status value is one of the six recognized states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid parcel status", s))
	}
	return nil
}

// String returns the snake_case name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status is delivered or cancelled.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// IsActive reports whether the parcel is in flight with an assigned driver
// but not yet terminal: accepted, picked_up, or in_transit.
func (s Status) IsActive() bool {
	return s == StatusAccepted || s == StatusPickedUp || s == StatusInTransit
}

// RequiresDriver reports whether a parcel in this status must hold a driver
// reference: accepted, picked_up, in_transit, and delivered.
func (s Status) RequiresDriver() bool {
	return s.IsActive() || s == StatusDelivered
}

// TransitionTo validates the move from the current status to target and
// returns the new status.
//
// Allowed moves are the single forward edge of the current status, or
// cancellation from any non-terminal status. Everything else, including
// re-entering a terminal state and skipping ahead, fails with an
// invalid-transition error.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}

	if target == StatusCancelled {
		if s.IsTerminal() {
			return StatusUnknown, errs.NewInvalidTransitionError("parcel", s.String(), target.String())
		}
		return StatusCancelled, nil
	}

	if next, ok := getForwardEdges()[s]; ok && next == target {
		return target, nil
	}

	return StatusUnknown, errs.NewInvalidTransitionError("parcel", s.String(), target.String())
}
