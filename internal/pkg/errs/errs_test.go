package errs_test

import (
	"errors"
	"testing"

	"courierops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("driverId", "123")

		assert.Equal(t, "driverId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("driverId", "123", cause)

		assert.Equal(t, "driverId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: driverId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("parcelId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("rating", 7, 0, 5)

		assert.Equal(t, "rating", err.ParamName)
		assert.Equal(t, 7, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 5, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 7 is rating, min value is 0, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("rejectionReason")

		assert.Equal(t, "rejectionReason", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: rejectionReason", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("rejectionReason", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: rejectionReason (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("parcel", "delivered", "accepted")

		assert.Equal(t, "parcel", err.Entity)
		assert.Equal(t, "delivered", err.From)
		assert.Equal(t, "accepted", err.To)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid transition: parcel cannot move from delivered to accepted", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("terminal state")
		err := errs.NewInvalidTransitionErrorWithCause("parcel", "cancelled", "picked_up", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid transition: parcel cannot move from cancelled to picked_up (cause: terminal state)",
			err.Error())
	})
}

func TestDuplicateKeyError(t *testing.T) {
	t.Run("NewDuplicateKeyError", func(t *testing.T) {
		err := errs.NewDuplicateKeyError("licensePlate", "ABC-1234")

		assert.Equal(t, "licensePlate", err.ParamName)
		assert.Equal(t, "ABC-1234", err.Value)
		assert.Equal(t, "duplicate key: licensePlate is ABC-1234", err.Error())
		assert.Equal(t, errs.ErrDuplicateKey, err.Unwrap())
	})

	t.Run("NewDuplicateKeyErrorWithCause", func(t *testing.T) {
		cause := errors.New("unique constraint violated")
		err := errs.NewDuplicateKeyErrorWithCause("applicantId", "u-1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "duplicate key: applicantId is u-1 (cause: unique constraint violated)", err.Error())
	})
}

func TestInconsistentStateError(t *testing.T) {
	err := errs.NewInconsistentStateError("applicantUser", "u-42")

	assert.Equal(t, "applicantUser", err.ParamName)
	assert.Equal(t, "inconsistent state: applicantUser is u-42", err.Error())
	assert.Equal(t, errs.ErrInconsistentState, err.Unwrap())
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("driver", "parcels in active statuses reference this driver")

	assert.Equal(t, "driver", err.ParamName)
	assert.Equal(t,
		"conflict with active work: driver (parcels in active statuses reference this driver)",
		err.Error())
	assert.Equal(t, errs.ErrConflict, err.Unwrap())
}

func TestInvalidAmountError(t *testing.T) {
	err := errs.NewInvalidAmountError("netAmount", -3.5)

	assert.Equal(t, "netAmount", err.ParamName)
	assert.InEpsilon(t, -3.5, err.Value, 1e-9)
	assert.Equal(t, "amount is invalid: netAmount is -3.5", err.Error())
	assert.Equal(t, errs.ErrInvalidAmount, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "duplicate key", errs.ErrDuplicateKey.Error())
		assert.Equal(t, "inconsistent state", errs.ErrInconsistentState.Error())
		assert.Equal(t, "conflict with active work", errs.ErrConflict.Error())
		assert.Equal(t, "amount is invalid", errs.ErrInvalidAmount.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("driverId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("rating", 7, 0, 5), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("reason"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewInvalidTransitionError("parcel", "delivered", "pending"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewDuplicateKeyError("licensePlate", "X"), errs.ErrDuplicateKey)
		require.ErrorIs(t, errs.NewInconsistentStateError("user", "u-1"), errs.ErrInconsistentState)
		require.ErrorIs(t, errs.NewConflictError("driver", "active parcels"), errs.ErrConflict)
		require.ErrorIs(t, errs.NewInvalidAmountError("netAmount", -1), errs.ErrInvalidAmount)
	})
}
