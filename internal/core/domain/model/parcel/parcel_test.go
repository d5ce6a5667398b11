package parcel_test

import (
	"testing"
	"time"

	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/core/domain/model/parcel"
	"courierops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWaypoint(t *testing.T, name string) parcel.Waypoint {
	t.Helper()
	loc, err := kernel.NewLocation(-17.82, 31.05)
	require.NoError(t, err)
	w, err := parcel.NewWaypoint(name, "12 Samora Machel Ave", loc)
	require.NoError(t, err)
	return w
}

func newValidParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"box of documents",
		20,
		parcel.PaymentMethodCash,
		newTestWaypoint(t, "CBD office"),
		newTestWaypoint(t, "Avondale flat"),
	)
	require.NoError(t, err)
	return p
}

func deliverParcel(t *testing.T, p *parcel.Parcel, driverID kernel.UUID, now time.Time) {
	t.Helper()
	require.NoError(t, p.Accept(driverID, now))
	require.NoError(t, p.PickUp(now))
	require.NoError(t, p.StartTransit(now))
	require.NoError(t, p.Deliver(20, 16, 3, now))
}

func TestNewParcel(t *testing.T) {
	t.Run("creates pending parcel with pending payment", func(t *testing.T) {
		p := newValidParcel(t)

		require.NoError(t, p.Validate())
		assert.Equal(t, parcel.StatusPending, p.Status())
		assert.Equal(t, parcel.PaymentStatusPending, p.PaymentStatus())
		assert.Nil(t, p.Driver())
		assert.Nil(t, p.FinalPrice())
		assert.Nil(t, p.DriverCommission())
		assert.Nil(t, p.PlatformFee())
		assert.Nil(t, p.AssignedAt())
	})

	t.Run("fails with non-positive price", func(t *testing.T) {
		_, err := parcel.NewParcel(
			kernel.NewUUID(), kernel.NewUUID(), "docs", 0,
			parcel.PaymentMethodCash, newTestWaypoint(t, "a"), newTestWaypoint(t, "b"))

		require.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("fails with unconstructed waypoint", func(t *testing.T) {
		var pickup parcel.Waypoint

		_, err := parcel.NewParcel(
			kernel.NewUUID(), kernel.NewUUID(), "docs", 20,
			parcel.PaymentMethodCash, pickup, newTestWaypoint(t, "b"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "pickup")
	})

	t.Run("fails with invalid payment method", func(t *testing.T) {
		_, err := parcel.NewParcel(
			kernel.NewUUID(), kernel.NewUUID(), "docs", 20,
			parcel.PaymentMethodUnknown, newTestWaypoint(t, "a"), newTestWaypoint(t, "b"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParcel_CounterOffers(t *testing.T) {
	t.Run("offers recorded while pending", func(t *testing.T) {
		p := newValidParcel(t)

		require.NoError(t, p.ProposeSenderOffer(22))
		require.NoError(t, p.ProposeDriverOffer(18))

		require.NotNil(t, p.SenderCounterOffer())
		assert.InEpsilon(t, 22.0, *p.SenderCounterOffer(), 1e-9)
		require.NotNil(t, p.DriverCounterOffer())
		assert.InEpsilon(t, 18.0, *p.DriverCounterOffer(), 1e-9)
	})

	t.Run("offers rejected after acceptance", func(t *testing.T) {
		p := newValidParcel(t)
		require.NoError(t, p.Accept(kernel.NewUUID(), time.Now()))

		require.ErrorIs(t, p.ProposeSenderOffer(22), errs.ErrInvalidTransition)
		require.ErrorIs(t, p.ProposeDriverOffer(18), errs.ErrInvalidTransition)
	})

	t.Run("non-positive offers rejected", func(t *testing.T) {
		p := newValidParcel(t)

		require.ErrorIs(t, p.ProposeSenderOffer(0), errs.ErrInvalidAmount)
		require.ErrorIs(t, p.ProposeDriverOffer(-5), errs.ErrInvalidAmount)
	})
}

func TestParcel_Lifecycle(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	driverID := kernel.NewUUID()

	t.Run("accept sets driver and assignedAt", func(t *testing.T) {
		p := newValidParcel(t)

		require.NoError(t, p.Accept(driverID, now))

		assert.Equal(t, parcel.StatusAccepted, p.Status())
		require.NotNil(t, p.Driver())
		assert.True(t, p.Driver().IsEqual(driverID))
		require.NotNil(t, p.AssignedAt())
		assert.Equal(t, now, *p.AssignedAt())
	})

	t.Run("accept requires a valid driver id", func(t *testing.T) {
		p := newValidParcel(t)
		var invalidDriver kernel.UUID

		require.Error(t, p.Accept(invalidDriver, now))
		assert.Equal(t, parcel.StatusPending, p.Status())
		assert.Nil(t, p.Driver())
	})

	t.Run("full happy path stamps every timestamp", func(t *testing.T) {
		p := newValidParcel(t)

		deliverParcel(t, p, driverID, now)

		assert.Equal(t, parcel.StatusDelivered, p.Status())
		require.NotNil(t, p.Driver())
		require.NotNil(t, p.AssignedAt())
		require.NotNil(t, p.PickedUpAt())
		require.NotNil(t, p.DeliveredAt())
		require.NotNil(t, p.FinalPrice())
		assert.InEpsilon(t, 20.0, *p.FinalPrice(), 1e-9)
		require.NotNil(t, p.DriverCommission())
		require.NotNil(t, p.PlatformFee())
		assert.LessOrEqual(t, *p.DriverCommission()+*p.PlatformFee(), *p.FinalPrice())
	})

	t.Run("pickup before acceptance is rejected", func(t *testing.T) {
		p := newValidParcel(t)

		require.ErrorIs(t, p.PickUp(now), errs.ErrInvalidTransition)
	})

	t.Run("deliver rejects breakdown exceeding final price", func(t *testing.T) {
		p := newValidParcel(t)
		require.NoError(t, p.Accept(driverID, now))
		require.NoError(t, p.PickUp(now))
		require.NoError(t, p.StartTransit(now))

		err := p.Deliver(20, 18, 5, now)

		require.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Equal(t, parcel.StatusInTransit, p.Status())
	})

	t.Run("deliver rejects non-positive final price", func(t *testing.T) {
		p := newValidParcel(t)
		require.NoError(t, p.Accept(driverID, now))
		require.NoError(t, p.PickUp(now))
		require.NoError(t, p.StartTransit(now))

		require.ErrorIs(t, p.Deliver(0, 0, 0, now), errs.ErrInvalidAmount)
	})

	t.Run("delivered parcel cannot be delivered again", func(t *testing.T) {
		p := newValidParcel(t)
		deliverParcel(t, p, driverID, now)

		require.ErrorIs(t, p.Deliver(20, 16, 3, now), errs.ErrInvalidTransition)
	})
}

func TestParcel_Cancel(t *testing.T) {
	now := time.Now()

	t.Run("cancel clears the driver reference", func(t *testing.T) {
		p := newValidParcel(t)
		require.NoError(t, p.Accept(kernel.NewUUID(), now))

		require.NoError(t, p.Cancel("sender changed plans", now))

		assert.Equal(t, parcel.StatusCancelled, p.Status())
		assert.Nil(t, p.Driver())
		assert.Equal(t, "sender changed plans", p.CancelReason())
		require.NotNil(t, p.CancelledAt())
	})

	t.Run("cancel requires a reason", func(t *testing.T) {
		p := newValidParcel(t)

		require.ErrorIs(t, p.Cancel("", now), errs.ErrValueIsRequired)
	})

	t.Run("terminal parcels cannot be cancelled", func(t *testing.T) {
		p := newValidParcel(t)
		deliverParcel(t, p, kernel.NewUUID(), now)

		require.ErrorIs(t, p.Cancel("too late", now), errs.ErrInvalidTransition)
	})
}

func TestParcel_MarkPaymentStatus(t *testing.T) {
	t.Run("paid then refunded", func(t *testing.T) {
		p := newValidParcel(t)

		require.NoError(t, p.MarkPaymentStatus(parcel.PaymentStatusPaid))
		require.NoError(t, p.MarkPaymentStatus(parcel.PaymentStatusRefunded))

		assert.Equal(t, parcel.PaymentStatusRefunded, p.PaymentStatus())
	})

	t.Run("refund requires a cleared payment", func(t *testing.T) {
		p := newValidParcel(t)

		err := p.MarkPaymentStatus(parcel.PaymentStatusRefunded)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestParcel_Rate(t *testing.T) {
	now := time.Now()

	t.Run("delivered parcel can be rated once", func(t *testing.T) {
		p := newValidParcel(t)
		deliverParcel(t, p, kernel.NewUUID(), now)

		require.NoError(t, p.Rate(4.5, "quick delivery"))

		require.NotNil(t, p.Rating())
		assert.InEpsilon(t, 4.5, *p.Rating(), 1e-9)
		assert.Equal(t, "quick delivery", p.RatingComment())

		require.ErrorIs(t, p.Rate(3, "changed my mind"), errs.ErrValueIsInvalid)
	})

	t.Run("undelivered parcel cannot be rated", func(t *testing.T) {
		p := newValidParcel(t)

		require.ErrorIs(t, p.Rate(4, ""), errs.ErrInvalidTransition)
	})

	t.Run("rating outside bounds fails", func(t *testing.T) {
		p := newValidParcel(t)
		deliverParcel(t, p, kernel.NewUUID(), now)

		require.ErrorIs(t, p.Rate(6, ""), errs.ErrValueIsOutOfRange)
	})
}

func TestRestoreParcel(t *testing.T) {
	now := time.Now()
	pickup := newTestWaypoint(t, "a")
	dropoff := newTestWaypoint(t, "b")

	t.Run("restores delivered parcel", func(t *testing.T) {
		driverID := kernel.NewUUID()
		finalPrice, commission, fee := 18.0, 14.4, 2.7

		p, err := parcel.RestoreParcel(
			kernel.NewUUID(), kernel.NewUUID(), "docs", 20, nil, &finalPrice, &finalPrice,
			pickup, dropoff, parcel.StatusDelivered, &driverID,
			parcel.PaymentMethodEcocash, parcel.PaymentStatusPaid,
			&commission, &fee, &now, &now, &now, nil, "", nil, "")

		require.NoError(t, err)
		assert.Equal(t, parcel.StatusDelivered, p.Status())
		require.NotNil(t, p.FinalPrice())
	})

	t.Run("rejects active parcel without driver", func(t *testing.T) {
		_, err := parcel.RestoreParcel(
			kernel.NewUUID(), kernel.NewUUID(), "docs", 20, nil, nil, nil,
			pickup, dropoff, parcel.StatusInTransit, nil,
			parcel.PaymentMethodCash, parcel.PaymentStatusPending,
			nil, nil, &now, &now, nil, nil, "", nil, "")

		require.ErrorIs(t, err, errs.ErrInconsistentState)
	})

	t.Run("rejects pending parcel with driver", func(t *testing.T) {
		driverID := kernel.NewUUID()

		_, err := parcel.RestoreParcel(
			kernel.NewUUID(), kernel.NewUUID(), "docs", 20, nil, nil, nil,
			pickup, dropoff, parcel.StatusPending, &driverID,
			parcel.PaymentMethodCash, parcel.PaymentStatusPending,
			nil, nil, nil, nil, nil, nil, "", nil, "")

		require.ErrorIs(t, err, errs.ErrInconsistentState)
	})

	t.Run("rejects delivered parcel without final price", func(t *testing.T) {
		driverID := kernel.NewUUID()

		_, err := parcel.RestoreParcel(
			kernel.NewUUID(), kernel.NewUUID(), "docs", 20, nil, nil, nil,
			pickup, dropoff, parcel.StatusDelivered, &driverID,
			parcel.PaymentMethodCash, parcel.PaymentStatusPaid,
			nil, nil, &now, &now, &now, nil, "", nil, "")

		require.ErrorIs(t, err, errs.ErrInconsistentState)
	})
}
