package commands

import (
	"errors"
	"time"

	"courierops/internal/core/domain/model/payment"
	"courierops/internal/pkg/errs"
	"courierops/internal/pkg/guard"
)

var ErrGeneratePayoutsCommandIsNotConstructed = errors.New(
	"GeneratePayoutsCommand must be created via NewGeneratePayoutsCommand constructor",
)

// GeneratePayoutsCommand represents a request to generate pending payout
// payments for every driver holding a positive pending earnings balance over
// the given period. Issued by the payout generation job.
type GeneratePayoutsCommand struct { //nolint:recvcheck //using for validation
	periodStart time.Time
	periodEnd   time.Time
	method      payment.Method

	guard guard.ConstructorGuard
}

// NewGeneratePayoutsCommand creates a command to generate a payout batch.
func NewGeneratePayoutsCommand(
	periodStart time.Time,
	periodEnd time.Time,
	method payment.Method,
) (GeneratePayoutsCommand, error) {
	cmd := GeneratePayoutsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPeriod(periodStart, periodEnd),
		cmd.setMethod(method),
	); err != nil {
		return GeneratePayoutsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GeneratePayoutsCommand) Validate() error {
	return c.guard.Validate(ErrGeneratePayoutsCommandIsNotConstructed)
}

// PeriodStart returns the start of the earnings period to settle.
func (c GeneratePayoutsCommand) PeriodStart() time.Time {
	return c.periodStart
}

// PeriodEnd returns the end of the earnings period to settle.
func (c GeneratePayoutsCommand) PeriodEnd() time.Time {
	return c.periodEnd
}

// Method returns the settlement method for the generated payouts.
func (c GeneratePayoutsCommand) Method() payment.Method {
	return c.method
}

func (c *GeneratePayoutsCommand) setPeriod(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return errs.NewValueIsRequiredError("payoutPeriod")
	}
	if start.After(end) {
		return errs.NewValueIsInvalidError("payoutPeriod: start is after end")
	}
	c.periodStart = start
	c.periodEnd = end
	return nil
}

func (c *GeneratePayoutsCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.method = method
	return nil
}
