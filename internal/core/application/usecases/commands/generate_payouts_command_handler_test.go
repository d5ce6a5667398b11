package commands_test

import (
	"testing"
	"time"

	"courierops/internal/core/application/usecases/commands"
	"courierops/internal/core/domain/model/driver"
	"courierops/internal/core/domain/model/payment"
	"courierops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGeneratePayoutsCommand(t *testing.T) commands.GeneratePayoutsCommand {
	t.Helper()
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewGeneratePayoutsCommand(start, start.AddDate(0, 0, 7), payment.MethodEcocash)
	require.NoError(t, err)
	return cmd
}

func TestGeneratePayoutsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd := newGeneratePayoutsCommand(t)

	first := newApprovedOnlineDriver(t)
	require.NoError(t, first.CreditDelivery(14.4))
	second := newApprovedOnlineDriver(t)
	require.NoError(t, second.CreditDelivery(32))

	paymentRepo := new(MockPaymentRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockPayoutUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PaymentRepository").Return(paymentRepo).Once()
	uow.On("DriverRepository").Return(driverRepo).Once()
	driverRepo.On("GetAllWithPendingEarnings", mock.Anything).
		Return([]*driver.Driver{first, second}, nil).Once()

	// The first driver was already covered by an earlier run; only the
	// second gets a new payout.
	paymentRepo.On("ExistsPayoutForPeriod", mock.Anything, first.ID(), cmd.PeriodStart(), cmd.PeriodEnd()).
		Return(true, nil).Once()
	paymentRepo.On("ExistsPayoutForPeriod", mock.Anything, second.ID(), cmd.PeriodStart(), cmd.PeriodEnd()).
		Return(false, nil).Once()
	paymentRepo.On("Add", mock.Anything, mock.MatchedBy(func(p *payment.Payment) bool {
		return p.DriverID().IsEqual(second.ID()) &&
			p.Amount() == 32 &&
			p.Type() == payment.TypePayout &&
			p.Status() == payment.StatusPending
	})).Return(nil).Once()

	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPayoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGeneratePayoutsCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	paymentRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestGeneratePayoutsCommandHandler_Handle_NoDrivers(t *testing.T) {
	ctx := t.Context()
	cmd := newGeneratePayoutsCommand(t)

	paymentRepo := new(MockPaymentRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockPayoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetAllWithPendingEarnings", mock.Anything).
			Return([]*driver.Driver{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPayoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGeneratePayoutsCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Zero(t, created)
	paymentRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewGeneratePayoutsCommand_Validation(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("inverted period rejected", func(t *testing.T) {
		_, err := commands.NewGeneratePayoutsCommand(start, start.AddDate(0, 0, -1), payment.MethodCash)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero period rejected", func(t *testing.T) {
		_, err := commands.NewGeneratePayoutsCommand(time.Time{}, start, payment.MethodCash)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
