package commands

import (
	"context"

	"courierops/internal/core/domain/model/payment"
)

// CreatePaymentCommandHandler records a manually entered driver payment.
// The referenced driver must exist; monetary invariants (derived net amount,
// period ordering) are enforced by the Payment aggregate.
type CreatePaymentCommandHandler struct {
	uowFactory PayoutUoWFactory
}

// NewCreatePaymentCommandHandler creates a handler for manual payment entry.
// Requires a PayoutUoWFactory spanning payment and driver repositories.
func NewCreatePaymentCommandHandler(uowFactory PayoutUoWFactory) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment creation command.
func (h CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) error {
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

	if _, err := uow.DriverRepository().Get(ctx, cmd.DriverID()); err != nil {
		return err
	}

	p, err := payment.NewPayment(
		cmd.PaymentID(),
		cmd.DriverID(),
		cmd.Amount(),
		cmd.GrossEarnings(),
		cmd.PlatformFeeAmount(),
		cmd.Method(),
		cmd.Type(),
		cmd.PeriodStart(),
		cmd.PeriodEnd(),
	)
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
