// Package errs provides standardized error types for the courier operations
// engine. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The package covers the engine's full failure taxonomy:
//   - ObjectNotFoundError: a referenced entity id does not exist
//   - ValueIsInvalidError / ValueIsOutOfRangeError / ValueIsRequiredError:
//     input validation failures, including unrecognized statuses
//   - InvalidTransitionError: a state change not reachable from the current status
//   - DuplicateKeyError: uniqueness violations (license plate, one application per user)
//   - InconsistentStateError: a required related entity is missing (data corruption)
//   - ConflictError: an operation blocked by active dependents
//   - InvalidAmountError: a financial computation producing an invalid monetary value
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Errors are always reported to the caller, never swallowed, and the engine
// itself never retries a failed operation.
package errs
