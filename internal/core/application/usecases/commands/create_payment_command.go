package commands

import (
	"errors"
	"time"

	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/core/domain/model/payment"
	"courierops/internal/pkg/errs"
	"courierops/internal/pkg/guard"
)

var ErrCreatePaymentCommandIsNotConstructed = errors.New(
	"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
)

// CreatePaymentCommand represents an admin's request to record a driver
// payment manually: a payout or an adjustment for a given earnings period.
type CreatePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID         kernel.UUID
	driverID          kernel.UUID
	amount            float64
	grossEarnings     float64
	platformFeeAmount float64
	method            payment.Method
	paymentType       payment.Type
	periodStart       time.Time
	periodEnd         time.Time

	guard guard.ConstructorGuard
}

// NewCreatePaymentCommand creates a command to record a driver payment.
// Monetary and period invariants are re-checked by the aggregate; the
// command validates identifiers and enum values up front.
func NewCreatePaymentCommand(
	paymentID kernel.UUID,
	driverID kernel.UUID,
	amount float64,
	grossEarnings float64,
	platformFeeAmount float64,
	method payment.Method,
	paymentType payment.Type,
	periodStart time.Time,
	periodEnd time.Time,
) (CreatePaymentCommand, error) {
	cmd := CreatePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setDriverID(driverID),
		cmd.setMethod(method),
		cmd.setType(paymentType),
	); err != nil {
		return CreatePaymentCommand{}, err
	}

	cmd.amount = amount
	cmd.grossEarnings = grossEarnings
	cmd.platformFeeAmount = platformFeeAmount
	cmd.periodStart = periodStart
	cmd.periodEnd = periodEnd
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

// PaymentID returns the unique identifier for the payment.
func (c CreatePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// DriverID returns the identifier of the driver being paid.
func (c CreatePaymentCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Amount returns the amount to transfer.
func (c CreatePaymentCommand) Amount() float64 {
	return c.amount
}

// GrossEarnings returns the gross earnings covered by the payment.
func (c CreatePaymentCommand) GrossEarnings() float64 {
	return c.grossEarnings
}

// PlatformFeeAmount returns the platform's cut of the gross.
func (c CreatePaymentCommand) PlatformFeeAmount() float64 {
	return c.platformFeeAmount
}

// Method returns how the payment is settled.
func (c CreatePaymentCommand) Method() payment.Method {
	return c.method
}

// Type returns whether this is a payout or an adjustment.
func (c CreatePaymentCommand) Type() payment.Type {
	return c.paymentType
}

// PeriodStart returns the start of the covered earnings period.
func (c CreatePaymentCommand) PeriodStart() time.Time {
	return c.periodStart
}

// PeriodEnd returns the end of the covered earnings period.
func (c CreatePaymentCommand) PeriodEnd() time.Time {
	return c.periodEnd
}

func (c *CreatePaymentCommand) setPaymentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.paymentID = id
	return nil
}

func (c *CreatePaymentCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}
	c.driverID = id
	return nil
}

func (c *CreatePaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.method = method
	return nil
}

func (c *CreatePaymentCommand) setType(paymentType payment.Type) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}
	c.paymentType = paymentType
	return nil
}
