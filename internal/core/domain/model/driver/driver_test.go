package driver_test

import (
	"testing"
	"time"

	"courierops/internal/core/domain/model/driver"
	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"motorbike",
		"Honda XR150",
		"DL-445566",
		"ABX-1234",
	)
	require.NoError(t, err)
	return d
}

func TestNewDriver(t *testing.T) {
	t.Run("creates pending offline driver at origin", func(t *testing.T) {
		id := kernel.NewUUID()
		userID := kernel.NewUUID()

		d, err := driver.NewDriver(id, userID, "motorbike", "Honda XR150", "DL-445566", "ABX-1234")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.True(t, d.UserID().IsEqual(userID))
		assert.Equal(t, driver.StatusPending, d.Status())
		assert.True(t, d.Location().IsEqual(kernel.OriginLocation()))
		assert.False(t, d.IsOnline())
		assert.False(t, d.IsAvailable())
		assert.Zero(t, d.Rating())
		assert.Zero(t, d.TotalTrips())
		assert.Zero(t, d.TotalEarnings())
		assert.Zero(t, d.PendingEarnings())
		assert.Nil(t, d.ApprovedAt())
		assert.Nil(t, d.SuspendedAt())
	})

	t.Run("fails with missing license plate", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), kernel.NewUUID(), "motorbike", "", "DL-445566", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "licensePlate")
	})

	t.Run("fails with missing user reference", func(t *testing.T) {
		var userID kernel.UUID

		_, err := driver.NewDriver(kernel.NewUUID(), userID, "motorbike", "", "DL-445566", "ABX-1234")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "userId")
	})
}

func TestDriver_Validate(t *testing.T) {
	var d driver.Driver

	require.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
}

func TestDriver_ChangeStatus(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("approve stamps approvedAt", func(t *testing.T) {
		d := newValidDriver(t)

		err := d.ChangeStatus(driver.StatusApproved, "", now)

		require.NoError(t, err)
		assert.Equal(t, driver.StatusApproved, d.Status())
		require.NotNil(t, d.ApprovedAt())
		assert.Equal(t, now, *d.ApprovedAt())
	})

	t.Run("suspend stores reason and forces driver off dispatch", func(t *testing.T) {
		d := newValidDriver(t)
		d.Approve(now)
		require.NoError(t, d.SetOnline(true))
		require.NoError(t, d.SetAvailability(true))

		err := d.ChangeStatus(driver.StatusSuspended, "complaint", now)

		require.NoError(t, err)
		assert.Equal(t, driver.StatusSuspended, d.Status())
		assert.Equal(t, "complaint", d.SuspensionReason())
		require.NotNil(t, d.SuspendedAt())
		assert.Equal(t, now, *d.SuspendedAt())
		assert.False(t, d.IsOnline())
		assert.False(t, d.IsAvailable())
	})

	t.Run("suspend without reason fails", func(t *testing.T) {
		d := newValidDriver(t)

		err := d.ChangeStatus(driver.StatusSuspended, "", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unrecognized target fails", func(t *testing.T) {
		d := newValidDriver(t)

		err := d.ChangeStatus(driver.Status(42), "", now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDriver_OnlineAvailability(t *testing.T) {
	now := time.Now()

	t.Run("suspended driver cannot go online or available", func(t *testing.T) {
		d := newValidDriver(t)
		require.NoError(t, d.Suspend("complaint", now))

		require.ErrorIs(t, d.SetOnline(true), errs.ErrInvalidTransition)
		require.ErrorIs(t, d.SetAvailability(true), errs.ErrInvalidTransition)
	})

	t.Run("suspended driver can still be marked offline", func(t *testing.T) {
		d := newValidDriver(t)
		require.NoError(t, d.Suspend("complaint", now))

		require.NoError(t, d.SetOnline(false))
		require.NoError(t, d.SetAvailability(false))
	})
}

func TestDriver_Earnings(t *testing.T) {
	t.Run("credit delivery accumulates pending earnings and trips", func(t *testing.T) {
		d := newValidDriver(t)

		require.NoError(t, d.CreditDelivery(12.5))
		require.NoError(t, d.CreditDelivery(7.5))

		assert.InEpsilon(t, 20.0, d.PendingEarnings(), 1e-9)
		assert.Equal(t, 2, d.TotalTrips())
		assert.Zero(t, d.TotalEarnings())
	})

	t.Run("negative commission fails", func(t *testing.T) {
		d := newValidDriver(t)

		require.ErrorIs(t, d.CreditDelivery(-1), errs.ErrInvalidAmount)
	})

	t.Run("settle payout moves pending into total", func(t *testing.T) {
		d := newValidDriver(t)
		require.NoError(t, d.CreditDelivery(20))

		require.NoError(t, d.SettlePayout(20))

		assert.Zero(t, d.PendingEarnings())
		assert.InEpsilon(t, 20.0, d.TotalEarnings(), 1e-9)
	})

	t.Run("payout exceeding pending balance fails", func(t *testing.T) {
		d := newValidDriver(t)
		require.NoError(t, d.CreditDelivery(10))

		require.ErrorIs(t, d.SettlePayout(15), errs.ErrInvalidAmount)
		assert.InEpsilon(t, 10.0, d.PendingEarnings(), 1e-9)
	})
}

func TestDriver_ApplyRating(t *testing.T) {
	t.Run("maintains running average", func(t *testing.T) {
		d := newValidDriver(t)

		require.NoError(t, d.ApplyRating(5))
		require.NoError(t, d.ApplyRating(3))

		assert.InEpsilon(t, 4.0, d.Rating(), 1e-9)
		assert.Equal(t, 2, d.RatingCount())
	})

	t.Run("rating outside bounds fails", func(t *testing.T) {
		d := newValidDriver(t)

		require.ErrorIs(t, d.ApplyRating(5.5), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, d.ApplyRating(-0.5), errs.ErrValueIsOutOfRange)
	})
}

func TestRestoreDriver(t *testing.T) {
	loc, _ := kernel.NewLocation(-17.8, 31.05)
	approvedAt := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)

	t.Run("restores persisted state", func(t *testing.T) {
		d, err := driver.RestoreDriver(
			kernel.NewUUID(), kernel.NewUUID(), "motorbike", "Honda XR150",
			"DL-445566", "ABX-1234", loc, true, true,
			4.2, 11, 37, driver.StatusApproved, "", nil, &approvedAt,
			150.75, 12.25)

		require.NoError(t, err)
		assert.Equal(t, driver.StatusApproved, d.Status())
		assert.True(t, d.IsOnline())
		assert.InEpsilon(t, 4.2, d.Rating(), 1e-9)
		assert.Equal(t, 37, d.TotalTrips())
		assert.InEpsilon(t, 150.75, d.TotalEarnings(), 1e-9)
		assert.InEpsilon(t, 12.25, d.PendingEarnings(), 1e-9)
	})

	t.Run("fails on rating out of range", func(t *testing.T) {
		_, err := driver.RestoreDriver(
			kernel.NewUUID(), kernel.NewUUID(), "motorbike", "",
			"DL-445566", "ABX-1234", loc, false, false,
			6.0, 1, 0, driver.StatusApproved, "", nil, nil, 0, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("fails on invalid persisted status", func(t *testing.T) {
		_, err := driver.RestoreDriver(
			kernel.NewUUID(), kernel.NewUUID(), "motorbike", "",
			"DL-445566", "ABX-1234", loc, false, false,
			0, 0, 0, driver.Status(42), "", nil, nil, 0, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
