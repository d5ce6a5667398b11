package payment

import (
	"fmt"

	"courierops/internal/pkg/errs"
)

// Status represents the processing state of a driver payment.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending means the payment has been recorded but not processed.
	StatusPending

	// StatusProcessing means the payment is being executed.
	StatusProcessing

	// StatusCompleted means the payment settled. Terminal.
	StatusCompleted

	// StatusFailed means the payment did not settle. Terminal.
	StatusFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusProcessing: "processing",
		StatusCompleted:  "completed",
		StatusFailed:     "failed",
	}
}

// Transitions form a short forward chain: pending may optionally pass
// through processing before settling either way.
func getValidTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:    {StatusProcessing, StatusCompleted, StatusFailed},
		StatusProcessing: {StatusCompleted, StatusFailed},
	}
}

// StatusFromString parses a payment status from its string form.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the Status is one of the recognized states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the lowercase name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// TransitionTo validates a status change and returns the new status.
// Terminal statuses cannot be re-entered or left.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}

	for _, allowed := range getValidTransitions()[s] {
		if allowed == target {
			return target, nil
		}
	}
	return StatusUnknown, errs.NewInvalidTransitionError("payment", s.String(), target.String())
}
