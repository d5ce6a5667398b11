package payment

import (
	"errors"
	"time"

	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment constructor")

// Payment represents one settlement record for a driver: either a periodic
// payout of accumulated pending earnings or a manual adjustment.
//
// Payment follows these invariants:
//   - netAmount always equals grossEarnings - platformFeeAmount and is never
//     negative; a negative result fails construction instead of clamping
//   - periodStart never follows periodEnd
//   - transactionID and processedBy are recorded only on completion
type Payment struct {
	id       kernel.UUID
	driverID kernel.UUID

	amount            float64
	grossEarnings     float64
	platformFeeAmount float64
	netAmount         float64

	method      Method
	paymentType Type
	status      Status

	periodStart time.Time
	periodEnd   time.Time

	transactionID string
	processedBy   *kernel.UUID
	processedAt   *time.Time
	failureReason string

	isConstructed bool
}

// NewPayment creates a new Payment in pending status.
//
// Parameters:
//   - id: unique identifier for the payment
//   - driverID: the driver being paid
//   - amount: the amount to transfer (must be positive)
//   - grossEarnings: gross earnings covered by this payment
//   - platformFeeAmount: the platform's cut of the gross
//   - method: how the payment is settled
//   - paymentType: payout or adjustment
//   - periodStart, periodEnd: the earnings period covered
//
// The net amount is derived, never supplied: grossEarnings minus
// platformFeeAmount. A negative net fails with an InvalidAmount error.
func NewPayment(
	id kernel.UUID,
	driverID kernel.UUID,
	amount float64,
	grossEarnings float64,
	platformFeeAmount float64,
	method Method,
	paymentType Type,
	periodStart time.Time,
	periodEnd time.Time,
) (*Payment, error) {
	p := &Payment{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setDriverID(driverID),
		p.setAmount(amount),
		p.setEarnings(grossEarnings, platformFeeAmount),
		p.setMethod(method),
		p.setType(paymentType),
		p.setPeriod(periodStart, periodEnd),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a Payment from persisted state.
// Used exclusively by the repository layer.
func RestorePayment(
	id kernel.UUID,
	driverID kernel.UUID,
	amount float64,
	grossEarnings float64,
	platformFeeAmount float64,
	method Method,
	paymentType Type,
	status Status,
	periodStart time.Time,
	periodEnd time.Time,
	transactionID string,
	processedBy *kernel.UUID,
	processedAt *time.Time,
	failureReason string,
) (*Payment, error) {
	p, err := NewPayment(id, driverID, amount, grossEarnings, platformFeeAmount,
		method, paymentType, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	p.status = status
	p.transactionID = transactionID
	p.processedBy = processedBy
	p.processedAt = processedAt
	p.failureReason = failureReason
	return p, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// IsEqual compares two payments by their unique identifiers.
func (p *Payment) IsEqual(other *Payment) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// DriverID returns the identifier of the driver being paid.
func (p *Payment) DriverID() kernel.UUID {
	return p.driverID
}

// Amount returns the amount to transfer.
func (p *Payment) Amount() float64 {
	return p.amount
}

// GrossEarnings returns the gross earnings covered by this payment.
func (p *Payment) GrossEarnings() float64 {
	return p.grossEarnings
}

// PlatformFeeAmount returns the platform's cut of the gross.
func (p *Payment) PlatformFeeAmount() float64 {
	return p.platformFeeAmount
}

// NetAmount returns grossEarnings minus platformFeeAmount.
func (p *Payment) NetAmount() float64 {
	return p.netAmount
}

// Method returns how the payment is settled.
func (p *Payment) Method() Method {
	return p.method
}

// Type returns whether this is a payout or an adjustment.
func (p *Payment) Type() Type {
	return p.paymentType
}

// Status returns the payment's processing state.
func (p *Payment) Status() Status {
	return p.status
}

// PeriodStart returns the start of the covered earnings period.
func (p *Payment) PeriodStart() time.Time {
	return p.periodStart
}

// PeriodEnd returns the end of the covered earnings period.
func (p *Payment) PeriodEnd() time.Time {
	return p.periodEnd
}

// TransactionID returns the external settlement reference, if completed.
func (p *Payment) TransactionID() string {
	return p.transactionID
}

// ProcessedBy returns the admin who completed or failed the payment, or nil.
func (p *Payment) ProcessedBy() *kernel.UUID {
	return p.processedBy
}

// ProcessedAt returns when the payment reached a terminal state, or nil.
func (p *Payment) ProcessedAt() *time.Time {
	return p.processedAt
}

// FailureReason returns why the payment failed, if it did.
func (p *Payment) FailureReason() string {
	return p.failureReason
}

// Process marks the payment as being executed.
func (p *Payment) Process() error {
	newStatus, err := p.status.TransitionTo(StatusProcessing)
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// Complete settles the payment. Requires the external transaction reference
// and records who processed it and when.
func (p *Payment) Complete(transactionID string, processedBy kernel.UUID, now time.Time) error {
	if transactionID == "" {
		return errs.NewValueIsRequiredError("transactionId")
	}
	if err := processedBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("processedBy", err)
	}

	newStatus, err := p.status.TransitionTo(StatusCompleted)
	if err != nil {
		return err
	}

	p.status = newStatus
	p.transactionID = transactionID
	p.processedBy = &processedBy
	p.processedAt = &now
	return nil
}

// Fail marks the payment as unsettled with a reason.
func (p *Payment) Fail(reason string, processedBy kernel.UUID, now time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("failureReason")
	}
	if err := processedBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("processedBy", err)
	}

	newStatus, err := p.status.TransitionTo(StatusFailed)
	if err != nil {
		return err
	}

	p.status = newStatus
	p.failureReason = reason
	p.processedBy = &processedBy
	p.processedAt = &now
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}
	p.driverID = id
	return nil
}

func (p *Payment) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewInvalidAmountError("amount", amount)
	}
	p.amount = amount
	return nil
}

func (p *Payment) setEarnings(gross, fee float64) error {
	if gross < 0 {
		return errs.NewInvalidAmountError("grossEarnings", gross)
	}
	if fee < 0 {
		return errs.NewInvalidAmountError("platformFeeAmount", fee)
	}

	net := gross - fee
	if net < 0 {
		return errs.NewInvalidAmountError("netAmount", net)
	}

	p.grossEarnings = gross
	p.platformFeeAmount = fee
	p.netAmount = net
	return nil
}

func (p *Payment) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}

func (p *Payment) setType(paymentType Type) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}
	p.paymentType = paymentType
	return nil
}

func (p *Payment) setPeriod(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return errs.NewValueIsRequiredError("paymentPeriod")
	}
	if start.After(end) {
		return errs.NewValueIsInvalidError("paymentPeriod: start is after end")
	}
	p.periodStart = start
	p.periodEnd = end
	return nil
}
