package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the engine's failure taxonomy. Every typed error below
// unwraps to one of these so callers can classify failures with errors.Is.
var (
	// ErrObjectNotFound indicates a referenced entity id does not resolve.
	ErrObjectNotFound = errors.New("object not found")
	// ErrValueIsInvalid indicates a value (including a status outside the
	// recognized set) is not acceptable.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrValueIsOutOfRange indicates a value falls outside its allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")
	// ErrValueIsRequired indicates a required value is missing.
	ErrValueIsRequired = errors.New("value is required")
	// ErrInvalidTransition indicates a state change is not reachable from the
	// entity's current status.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrDuplicateKey indicates a uniqueness constraint would be violated.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrInconsistentState indicates a related entity that must exist does
	// not. This is a data-integrity violation, not a caller error.
	ErrInconsistentState = errors.New("inconsistent state")
	// ErrConflict indicates an operation is blocked by active dependents.
	ErrConflict = errors.New("conflict with active work")
	// ErrInvalidAmount indicates a financial computation would produce a
	// negative or otherwise invalid monetary value.
	ErrInvalidAmount = errors.New("amount is invalid")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError reports that an entity lookup by id failed.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause, typically a storage-level error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports that a named value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// underlying validation failure.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports that a value is outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// the underlying validation failure.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidTransitionError reports a state change that is not reachable from
// the entity's current status.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
	Cause  error
}

// NewInvalidTransitionError creates an InvalidTransitionError without a cause.
func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError
// wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(entity, from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s cannot move from %s to %s (cause: %s)",
			ErrInvalidTransition, e.Entity, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidTransition, e.Entity, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// DuplicateKeyError reports a uniqueness violation, such as a second
// application for the same applicant or a reused license plate.
type DuplicateKeyError struct {
	ParamName string
	Value     any
	Cause     error
}

// NewDuplicateKeyError creates a DuplicateKeyError without a cause.
func NewDuplicateKeyError(paramName string, value any) *DuplicateKeyError {
	return &DuplicateKeyError{ParamName: paramName, Value: value}
}

// NewDuplicateKeyErrorWithCause creates a DuplicateKeyError wrapping the
// storage-level constraint error.
func NewDuplicateKeyErrorWithCause(paramName string, value any, cause error) *DuplicateKeyError {
	return &DuplicateKeyError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *DuplicateKeyError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is %v (cause: %s)", ErrDuplicateKey, e.ParamName, e.Value, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is %v", ErrDuplicateKey, e.ParamName, e.Value))
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// InconsistentStateError reports that a related entity which must exist does
// not. Unlike ObjectNotFoundError this signals corrupted data, not bad input.
type InconsistentStateError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewInconsistentStateError creates an InconsistentStateError without a cause.
func NewInconsistentStateError(paramName string, id any) *InconsistentStateError {
	return &InconsistentStateError{ParamName: paramName, ID: id}
}

// NewInconsistentStateErrorWithCause creates an InconsistentStateError
// wrapping an underlying cause.
func NewInconsistentStateErrorWithCause(paramName string, id any, cause error) *InconsistentStateError {
	return &InconsistentStateError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *InconsistentStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is %v (cause: %s)", ErrInconsistentState, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is %v", ErrInconsistentState, e.ParamName, e.ID))
}

func (e *InconsistentStateError) Unwrap() error {
	return ErrInconsistentState
}

// ConflictError reports an operation blocked by active dependents, such as
// deleting a driver that still has parcels in flight.
type ConflictError struct {
	ParamName string
	Reason    string
	Cause     error
}

// NewConflictError creates a ConflictError without a cause.
func NewConflictError(paramName, reason string) *ConflictError {
	return &ConflictError{ParamName: paramName, Reason: reason}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying
// cause.
func NewConflictErrorWithCause(paramName, reason string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Reason: reason, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (%s) (cause: %s)", ErrConflict, e.ParamName, e.Reason, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s (%s)", ErrConflict, e.ParamName, e.Reason))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// InvalidAmountError reports a monetary value that would be negative or
// otherwise invalid. Never produced by clamping; the bad input is surfaced.
type InvalidAmountError struct {
	ParamName string
	Value     float64
	Cause     error
}

// NewInvalidAmountError creates an InvalidAmountError without a cause.
func NewInvalidAmountError(paramName string, value float64) *InvalidAmountError {
	return &InvalidAmountError{ParamName: paramName, Value: value}
}

// NewInvalidAmountErrorWithCause creates an InvalidAmountError wrapping an
// underlying cause.
func NewInvalidAmountErrorWithCause(paramName string, value float64, cause error) *InvalidAmountError {
	return &InvalidAmountError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *InvalidAmountError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is %g (cause: %s)", ErrInvalidAmount, e.ParamName, e.Value, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is %g", ErrInvalidAmount, e.ParamName, e.Value))
}

func (e *InvalidAmountError) Unwrap() error {
	return ErrInvalidAmount
}
