package commands

import (
	"context"
	"time"

	"courierops/internal/core/domain/model/payment"
)

// CompletePaymentCommandHandler settles a driver payment. Completing a
// payout additionally moves the covered amount from the driver's pending
// earnings into total earnings, in the same transaction, so the two balances
// never drift apart.
type CompletePaymentCommandHandler struct {
	uowFactory PayoutUoWFactory
}

// NewCompletePaymentCommandHandler creates a handler for payment completion.
// Requires a PayoutUoWFactory spanning payment and driver repositories.
func NewCompletePaymentCommandHandler(uowFactory PayoutUoWFactory) CompletePaymentCommandHandler {
	return CompletePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment completion command.
func (h CompletePaymentCommandHandler) Handle(ctx context.Context, cmd CompletePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()

	p, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	if err = p.Complete(cmd.TransactionID(), cmd.ProcessedBy(), time.Now().UTC()); err != nil {
		return err
	}

	if p.Type() == payment.TypePayout {
		driverRepo := uow.DriverRepository()

		d, err := driverRepo.Get(ctx, p.DriverID())
		if err != nil {
			return err
		}

		if err = d.SettlePayout(p.Amount()); err != nil {
			return err
		}

		if err = driverRepo.Update(ctx, d); err != nil {
			return err
		}
	}

	if err = paymentRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
