package driver

import (
	"fmt"

	"courierops/internal/pkg/errs"
)

// Status represents the operational state of a driver profile.
//
// Drivers created through application approval start in Approved; drivers
// created directly by an admin start in Pending. Status changes are
// admin-driven and may move between any recognized states, but entering
// Suspended carries side effects (the driver is forced offline and
// unavailable) handled by the aggregate.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending marks a driver profile awaiting admin confirmation.
	StatusPending

	// StatusApproved marks an operational driver eligible for dispatch.
	StatusApproved

	// StatusSuspended marks a driver barred from dispatch.
	// A suspended driver is forced offline and unavailable.
	StatusSuspended

	// StatusRejected marks a driver profile that was turned down.
	StatusRejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusApproved:  "approved",
		StatusSuspended: "suspended",
		StatusRejected:  "rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusApproved:  "approved",
		StatusSuspended: "suspended",
		StatusRejected:  "rejected",
	}
}

// StatusFromString parses a status from its string representation.
// Returns an error for values outside the four recognized states.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid driver status", s))
}

// Validate checks if the Status value is one of the four recognized states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid driver status", s))
	}
	return nil
}

// String returns the lowercase name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
