package commands

import (
	"context"
	"time"
)

// FailPaymentCommandHandler records a failed settlement attempt on a driver
// payment. Pending earnings are not touched; only payout completion moves
// balances.
type FailPaymentCommandHandler struct {
	uowFactory PayoutUoWFactory
}

// NewFailPaymentCommandHandler creates a handler for payment failure.
func NewFailPaymentCommandHandler(uowFactory PayoutUoWFactory) FailPaymentCommandHandler {
	return FailPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment failure command.
func (h FailPaymentCommandHandler) Handle(ctx context.Context, cmd FailPaymentCommand) error {
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

	if err = p.Fail(cmd.Reason(), cmd.ProcessedBy(), time.Now().UTC()); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
