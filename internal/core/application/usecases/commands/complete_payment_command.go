package commands

import (
	"errors"

	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/pkg/errs"
	"courierops/internal/pkg/guard"
)

var ErrCompletePaymentCommandIsNotConstructed = errors.New(
	"CompletePaymentCommand must be created via NewCompletePaymentCommand constructor",
)

// CompletePaymentCommand represents an admin's confirmation that a driver
// payment settled, carrying the external transaction reference.
type CompletePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID     kernel.UUID
	transactionID string
	processedBy   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompletePaymentCommand creates a command to complete a payment.
func NewCompletePaymentCommand(
	paymentID kernel.UUID,
	transactionID string,
	processedBy kernel.UUID,
) (CompletePaymentCommand, error) {
	cmd := CompletePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setTransactionID(transactionID),
		cmd.setProcessedBy(processedBy),
	); err != nil {
		return CompletePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCompletePaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier of the payment being completed.
func (c CompletePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// TransactionID returns the external settlement reference.
func (c CompletePaymentCommand) TransactionID() string {
	return c.transactionID
}

// ProcessedBy returns the identifier of the admin confirming settlement.
func (c CompletePaymentCommand) ProcessedBy() kernel.UUID {
	return c.processedBy
}

func (c *CompletePaymentCommand) setPaymentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.paymentID = id
	return nil
}

func (c *CompletePaymentCommand) setTransactionID(transactionID string) error {
	if transactionID == "" {
		return errs.NewValueIsRequiredError("transactionId")
	}
	c.transactionID = transactionID
	return nil
}

func (c *CompletePaymentCommand) setProcessedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("processedBy", err)
	}
	c.processedBy = id
	return nil
}
