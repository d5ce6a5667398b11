package commands

import (
	"context"

	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/core/domain/model/payment"
)

// GeneratePayoutsCommandHandler creates one pending payout payment per
// driver with a positive pending earnings balance. Generation is idempotent
// per period: drivers who already have a payout covering the period are
// skipped, so the job can safely re-run after a partial failure.
//
// Earnings credited to drivers are already net of the platform's cut, so a
// generated payout carries the full pending balance with no further fee.
type GeneratePayoutsCommandHandler struct {
	uowFactory PayoutUoWFactory
}

// NewGeneratePayoutsCommandHandler creates a handler for payout generation.
// Requires a PayoutUoWFactory spanning payment and driver repositories.
func NewGeneratePayoutsCommandHandler(uowFactory PayoutUoWFactory) GeneratePayoutsCommandHandler {
	return GeneratePayoutsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payout generation command.
// Returns the number of payouts created.
func (h GeneratePayoutsCommandHandler) Handle(ctx context.Context, cmd GeneratePayoutsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()

	drivers, err := uow.DriverRepository().GetAllWithPendingEarnings(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, d := range drivers {
		exists, err := paymentRepo.ExistsPayoutForPeriod(ctx, d.ID(), cmd.PeriodStart(), cmd.PeriodEnd())
		if err != nil {
			return 0, err
		}
		if exists {
			continue
		}

		payout, err := payment.NewPayment(
			kernel.NewUUID(),
			d.ID(),
			d.PendingEarnings(),
			d.PendingEarnings(),
			0,
			cmd.Method(),
			payment.TypePayout,
			cmd.PeriodStart(),
			cmd.PeriodEnd(),
		)
		if err != nil {
			return 0, err
		}

		if err = paymentRepo.Add(ctx, payout); err != nil {
			return 0, err
		}
		created++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return created, nil
}
