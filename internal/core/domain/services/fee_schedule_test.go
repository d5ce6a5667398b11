package services_test

import (
	"testing"

	"courierops/internal/core/domain/services"
	"courierops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestNewFeeSchedule(t *testing.T) {
	t.Run("valid rates", func(t *testing.T) {
		f, err := services.NewFeeSchedule(0.15, 0.80)

		require.NoError(t, err)
		require.NoError(t, f.Validate())
		assert.InEpsilon(t, 0.15, f.PlatformFeeRate(), 1e-9)
		assert.InEpsilon(t, 0.80, f.DriverCommissionRate(), 1e-9)
	})

	t.Run("zero rates are allowed", func(t *testing.T) {
		_, err := services.NewFeeSchedule(0, 0)
		require.NoError(t, err)
	})

	t.Run("negative rate rejected", func(t *testing.T) {
		_, err := services.NewFeeSchedule(-0.1, 0.8)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rates summing above one rejected", func(t *testing.T) {
		_, err := services.NewFeeSchedule(0.5, 0.6)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var f services.FeeSchedule
		require.Error(t, f.Validate())
	})
}

func TestFeeSchedule_FinalPrice(t *testing.T) {
	f, err := services.NewFeeSchedule(0.15, 0.80)
	require.NoError(t, err)

	t.Run("asking price stands without offers", func(t *testing.T) {
		got, err := f.FinalPrice(20, nil, nil)

		require.NoError(t, err)
		assert.InEpsilon(t, 20.0, got, 1e-9)
	})

	t.Run("sender counter-offer supersedes asking price", func(t *testing.T) {
		got, err := f.FinalPrice(20, ptr(22), nil)

		require.NoError(t, err)
		assert.InEpsilon(t, 22.0, got, 1e-9)
	})

	t.Run("driver counter-offer wins as the later offer", func(t *testing.T) {
		got, err := f.FinalPrice(20, ptr(22), ptr(18))

		require.NoError(t, err)
		assert.InEpsilon(t, 18.0, got, 1e-9)
	})

	t.Run("driver counter-offer alone wins", func(t *testing.T) {
		got, err := f.FinalPrice(20, nil, ptr(18))

		require.NoError(t, err)
		assert.InEpsilon(t, 18.0, got, 1e-9)
	})

	t.Run("non-positive resolution rejected", func(t *testing.T) {
		_, err := f.FinalPrice(20, nil, ptr(-3))
		require.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestFeeSchedule_QuoteFor(t *testing.T) {
	f, err := services.NewFeeSchedule(0.15, 0.80)
	require.NoError(t, err)

	t.Run("splits by the configured rates", func(t *testing.T) {
		q, err := f.QuoteFor(18)

		require.NoError(t, err)
		assert.InEpsilon(t, 14.4, q.DriverCommission, 1e-9)
		assert.InEpsilon(t, 2.7, q.PlatformFee, 1e-9)
		assert.LessOrEqual(t, q.DriverCommission+q.PlatformFee, 18.0)
	})

	t.Run("non-positive price rejected", func(t *testing.T) {
		_, err := f.QuoteFor(0)
		require.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestFeeSchedule_PaymentNet(t *testing.T) {
	f, err := services.NewFeeSchedule(0.15, 0.80)
	require.NoError(t, err)

	t.Run("net is gross minus fee", func(t *testing.T) {
		net, err := f.PaymentNet(100, 20)

		require.NoError(t, err)
		assert.InEpsilon(t, 80.0, net, 1e-9)
	})

	t.Run("zero net is allowed", func(t *testing.T) {
		net, err := f.PaymentNet(50, 50)

		require.NoError(t, err)
		assert.Zero(t, net)
	})

	t.Run("negative net rejected, not clamped", func(t *testing.T) {
		_, err := f.PaymentNet(50, 60)
		require.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("negative inputs rejected", func(t *testing.T) {
		_, err := f.PaymentNet(-1, 0)
		require.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = f.PaymentNet(10, -1)
		require.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}
