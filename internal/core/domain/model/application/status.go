package application

import (
	"fmt"

	"courierops/internal/pkg/errs"
)

// Status represents the review state of a driver application.
//
// Unlike the parcel state machine, the review flow is admin-driven and mostly
// free-form: an admin may move an application between any of the recognized
// review states. The single hard rule is that an application already in
// Approved cannot be approved again, because approval carries a compound
// side effect (driver creation plus role change) that must fire exactly once.
//
// Status is a value object that validates state values and transitions and
// provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly submitted application.
	StatusPending

	// StatusUnderReview indicates an admin has started looking at the application.
	StatusUnderReview

	// StatusApproved indicates the application passed review. Entering this
	// status creates the Driver profile and promotes the applicant's role.
	StatusApproved

	// StatusRejected indicates the application failed review.
	// A rejection reason is required when entering this status.
	StatusRejected

	// StatusOnHold indicates review is paused pending more information.
	StatusOnHold
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "unknown",
		StatusPending:     "pending",
		StatusUnderReview: "under_review",
		StatusApproved:    "approved",
		StatusRejected:    "rejected",
		StatusOnHold:      "on_hold",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:     "pending",
		StatusUnderReview: "under_review",
		StatusApproved:    "approved",
		StatusRejected:    "rejected",
		StatusOnHold:      "on_hold",
	}
}

// StatusFromString parses a status from its string representation.
// Returns an error for values outside the five recognized review states.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid application status", s))
}

// Validate checks if the Status value is one of the five recognized review
// states. StatusUnknown and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid application status", s))
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

// Review transitions the status to the given review target.
//
// Any recognized target is reachable from any state, with one exception:
// an application already in Approved cannot be approved again. Re-approval
// would repeat the compound approval side effect (a second Driver for the
// same user), so it fails with an invalid-transition error.
func (s Status) Review(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}

	if s == StatusApproved && target == StatusApproved {
		return StatusUnknown, errs.NewInvalidTransitionError("application", s.String(), target.String())
	}

	return target, nil
}
