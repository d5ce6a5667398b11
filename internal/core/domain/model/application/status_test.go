package application_test

import (
	"testing"

	"courierops/internal/core/domain/model/application"
	"courierops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []application.Status{
		application.StatusPending,
		application.StatusUnderReview,
		application.StatusApproved,
		application.StatusRejected,
		application.StatusOnHold,
	}
	for _, s := range valid {
		t.Run(s.String(), func(t *testing.T) {
			require.NoError(t, s.Validate())
		})
	}

	t.Run("unknown is invalid", func(t *testing.T) {
		require.Error(t, application.StatusUnknown.Validate())
	})

	t.Run("out of range is invalid", func(t *testing.T) {
		require.Error(t, application.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", application.StatusPending.String())
	assert.Equal(t, "under_review", application.StatusUnderReview.String())
	assert.Equal(t, "approved", application.StatusApproved.String())
	assert.Equal(t, "rejected", application.StatusRejected.String())
	assert.Equal(t, "on_hold", application.StatusOnHold.String())
	assert.Equal(t, "unknown", application.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses all valid statuses", func(t *testing.T) {
		for _, name := range []string{"pending", "under_review", "approved", "rejected", "on_hold"} {
			s, err := application.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, s.String())
		}
	})

	t.Run("rejects unrecognized value", func(t *testing.T) {
		_, err := application.StatusFromString("archived")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Review(t *testing.T) {
	t.Run("any recognized target reachable from pending", func(t *testing.T) {
		for _, target := range []application.Status{
			application.StatusUnderReview,
			application.StatusApproved,
			application.StatusRejected,
			application.StatusOnHold,
		} {
			got, err := application.StatusPending.Review(target)
			require.NoError(t, err)
			assert.Equal(t, target, got)
		}
	})

	t.Run("re-approval is not allowed", func(t *testing.T) {
		_, err := application.StatusApproved.Review(application.StatusApproved)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("approved application can still be suspended via on_hold", func(t *testing.T) {
		got, err := application.StatusApproved.Review(application.StatusOnHold)

		require.NoError(t, err)
		assert.Equal(t, application.StatusOnHold, got)
	})

	t.Run("unrecognized target fails with invalid value", func(t *testing.T) {
		_, err := application.StatusPending.Review(application.Status(42))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
