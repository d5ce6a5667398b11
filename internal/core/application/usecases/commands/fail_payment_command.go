package commands

import (
	"errors"

	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/pkg/errs"
	"courierops/internal/pkg/guard"
)

var ErrFailPaymentCommandIsNotConstructed = errors.New(
	"FailPaymentCommand must be created via NewFailPaymentCommand constructor",
)

// FailPaymentCommand represents an admin marking a driver payment as failed,
// with the reason. The driver's pending earnings stay untouched so the
// amount remains payable by a later attempt.
type FailPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID   kernel.UUID
	reason      string
	processedBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewFailPaymentCommand creates a command to fail a payment.
func NewFailPaymentCommand(
	paymentID kernel.UUID,
	reason string,
	processedBy kernel.UUID,
) (FailPaymentCommand, error) {
	cmd := FailPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setReason(reason),
		cmd.setProcessedBy(processedBy),
	); err != nil {
		return FailPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FailPaymentCommand) Validate() error {
	return c.guard.Validate(ErrFailPaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier of the payment being failed.
func (c FailPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// Reason returns why the payment failed.
func (c FailPaymentCommand) Reason() string {
	return c.reason
}

// ProcessedBy returns the identifier of the admin recording the failure.
func (c FailPaymentCommand) ProcessedBy() kernel.UUID {
	return c.processedBy
}

func (c *FailPaymentCommand) setPaymentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.paymentID = id
	return nil
}

func (c *FailPaymentCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("failureReason")
	}
	c.reason = reason
	return nil
}

func (c *FailPaymentCommand) setProcessedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("processedBy", err)
	}
	c.processedBy = id
	return nil
}
