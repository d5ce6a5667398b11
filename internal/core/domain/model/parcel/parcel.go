package parcel

import (
	"errors"
	"time"

	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/pkg/errs"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not
// created through NewParcel or RestoreParcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")

// Parcel represents one delivery job from pickup to dropoff. It is the
// aggregate root for the delivery lifecycle and the per-parcel financials.
//
// Parcel follows these invariants:
//   - Status moves only forward (pending -> accepted -> picked_up ->
//     in_transit -> delivered), except for cancellation from any
//     non-terminal state
//   - The driver reference is set if and only if status is accepted,
//     picked_up, in_transit, or delivered
//   - finalPrice, driverCommission, and platformFee are set if and only if
//     status is delivered, and commission + fee never exceeds finalPrice
//   - Each transition stamps its own timestamp exactly once
type Parcel struct {
	id       kernel.UUID
	senderID kernel.UUID

	description string
	price       float64

	senderCounterOffer *float64
	driverCounterOffer *float64
	finalPrice         *float64

	pickup  Waypoint
	dropoff Waypoint

	status   Status
	driverID *kernel.UUID

	paymentMethod PaymentMethod
	paymentStatus PaymentStatus

	driverCommission *float64
	platformFee      *float64

	assignedAt  *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	cancelledAt *time.Time

	cancelReason  string
	rating        *float64
	ratingComment string

	isConstructed bool
}

// NewParcel creates a new Parcel in pending status with pending payment.
//
// Parameters:
//   - id: unique identifier for the parcel
//   - senderID: the client sending the parcel
//   - description: what is being shipped
//   - price: the sender's asking price (must be positive)
//   - paymentMethod: cash or ecocash
//   - pickup, dropoff: validated delivery waypoints
func NewParcel(
	id kernel.UUID,
	senderID kernel.UUID,
	description string,
	price float64,
	paymentMethod PaymentMethod,
	pickup Waypoint,
	dropoff Waypoint,
) (*Parcel, error) {
	p := &Parcel{
		status:        StatusPending,
		paymentStatus: PaymentStatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setSenderID(senderID),
		p.setDescription(description),
		p.setPrice(price),
		p.setPaymentMethod(paymentMethod),
		p.setWaypoints(pickup, dropoff),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a Parcel from persisted state.
// Used exclusively by the repository layer. Beyond field validation it
// re-checks the cross-field invariants (driver reference vs status,
// finalPrice vs delivered) so corrupted rows surface as errors instead of
// leaking into the domain.
func RestoreParcel(
	id kernel.UUID,
	senderID kernel.UUID,
	description string,
	price float64,
	senderCounterOffer *float64,
	driverCounterOffer *float64,
	finalPrice *float64,
	pickup Waypoint,
	dropoff Waypoint,
	status Status,
	driverID *kernel.UUID,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	driverCommission *float64,
	platformFee *float64,
	assignedAt *time.Time,
	pickedUpAt *time.Time,
	deliveredAt *time.Time,
	cancelledAt *time.Time,
	cancelReason string,
	rating *float64,
	ratingComment string,
) (*Parcel, error) {
	p, err := NewParcel(id, senderID, description, price, paymentMethod, pickup, dropoff)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(status.Validate(), paymentStatus.Validate()); err != nil {
		return nil, err
	}

	if status.RequiresDriver() != (driverID != nil) {
		return nil, errs.NewInconsistentStateError("parcelDriver", id.String())
	}
	if (status == StatusDelivered) != (finalPrice != nil) {
		return nil, errs.NewInconsistentStateError("parcelFinalPrice", id.String())
	}

	p.senderCounterOffer = senderCounterOffer
	p.driverCounterOffer = driverCounterOffer
	p.finalPrice = finalPrice
	p.status = status
	p.driverID = driverID
	p.paymentStatus = paymentStatus
	p.driverCommission = driverCommission
	p.platformFee = platformFee
	p.assignedAt = assignedAt
	p.pickedUpAt = pickedUpAt
	p.deliveredAt = deliveredAt
	p.cancelledAt = cancelledAt
	p.cancelReason = cancelReason
	p.rating = rating
	p.ratingComment = ratingComment
	return p, nil
}

// Validate ensures the Parcel instance was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// SenderID returns the sending client's identifier.
func (p *Parcel) SenderID() kernel.UUID {
	return p.senderID
}

// Description returns what is being shipped.
func (p *Parcel) Description() string {
	return p.description
}

// Price returns the sender's asking price.
func (p *Parcel) Price() float64 {
	return p.price
}

// SenderCounterOffer returns the sender's counter-offer, or nil.
func (p *Parcel) SenderCounterOffer() *float64 {
	return p.senderCounterOffer
}

// DriverCounterOffer returns the driver's counter-offer, or nil.
func (p *Parcel) DriverCounterOffer() *float64 {
	return p.driverCounterOffer
}

// FinalPrice returns the agreed price, set on delivery, or nil.
func (p *Parcel) FinalPrice() *float64 {
	return p.finalPrice
}

// Pickup returns the pickup waypoint.
func (p *Parcel) Pickup() Waypoint {
	return p.pickup
}

// Dropoff returns the dropoff waypoint.
func (p *Parcel) Dropoff() Waypoint {
	return p.dropoff
}

// Status returns the current delivery status.
func (p *Parcel) Status() Status {
	return p.status
}

// Driver returns the assigned driver's ID, or nil if unassigned.
func (p *Parcel) Driver() *kernel.UUID {
	return p.driverID
}

// PaymentMethod returns how the sender pays.
func (p *Parcel) PaymentMethod() PaymentMethod {
	return p.paymentMethod
}

// PaymentStatus returns the settlement state of the sender's payment.
func (p *Parcel) PaymentStatus() PaymentStatus {
	return p.paymentStatus
}

// DriverCommission returns the driver's cut, set on delivery, or nil.
func (p *Parcel) DriverCommission() *float64 {
	return p.driverCommission
}

// PlatformFee returns the marketplace's cut, set on delivery, or nil.
func (p *Parcel) PlatformFee() *float64 {
	return p.platformFee
}

// AssignedAt returns when a driver accepted the parcel, or nil.
func (p *Parcel) AssignedAt() *time.Time {
	return p.assignedAt
}

// PickedUpAt returns when the parcel was collected, or nil.
func (p *Parcel) PickedUpAt() *time.Time {
	return p.pickedUpAt
}

// DeliveredAt returns when the parcel was delivered, or nil.
func (p *Parcel) DeliveredAt() *time.Time {
	return p.deliveredAt
}

// CancelledAt returns when the parcel was cancelled, or nil.
func (p *Parcel) CancelledAt() *time.Time {
	return p.cancelledAt
}

// CancelReason returns the reason recorded with a cancellation.
func (p *Parcel) CancelReason() string {
	return p.cancelReason
}

// Rating returns the sender's post-delivery rating, or nil.
func (p *Parcel) Rating() *float64 {
	return p.rating
}

// RatingComment returns the sender's post-delivery comment.
func (p *Parcel) RatingComment() string {
	return p.ratingComment
}

// ProposeSenderOffer records a counter-offer from the sender.
// Offers can only change while the parcel is still pending.
func (p *Parcel) ProposeSenderOffer(amount float64) error {
	if p.status != StatusPending {
		return errs.NewInvalidTransitionError("parcel", p.status.String(), "sender counter-offer")
	}
	if amount <= 0 {
		return errs.NewInvalidAmountError("senderCounterOffer", amount)
	}
	p.senderCounterOffer = &amount
	return nil
}

// ProposeDriverOffer records a counter-offer from a driver.
// Offers can only change while the parcel is still pending.
func (p *Parcel) ProposeDriverOffer(amount float64) error {
	if p.status != StatusPending {
		return errs.NewInvalidTransitionError("parcel", p.status.String(), "driver counter-offer")
	}
	if amount <= 0 {
		return errs.NewInvalidAmountError("driverCounterOffer", amount)
	}
	p.driverCounterOffer = &amount
	return nil
}

// Accept assigns the parcel to a driver and moves it to accepted.
// Sets the driver reference and stamps assignedAt.
func (p *Parcel) Accept(driverID kernel.UUID, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := p.status.TransitionTo(StatusAccepted)
	if err != nil {
		return err
	}

	p.status = newStatus
	p.driverID = &driverID
	p.assignedAt = &now
	return nil
}

// PickUp marks the parcel collected by its driver and stamps pickedUpAt.
func (p *Parcel) PickUp(now time.Time) error {
	newStatus, err := p.status.TransitionTo(StatusPickedUp)
	if err != nil {
		return err
	}

	p.status = newStatus
	p.pickedUpAt = &now
	return nil
}

// StartTransit marks the parcel on its way to the dropoff.
func (p *Parcel) StartTransit(now time.Time) error {
	newStatus, err := p.status.TransitionTo(StatusInTransit)
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// Deliver completes the delivery. The agreed final price and the financial
// breakdown are persisted on the parcel so later aggregation never needs to
// recompute them.
//
// Business rules:
//   - only reachable from in_transit
//   - finalPrice must be positive
//   - commission and fee must be non-negative and sum to at most finalPrice
func (p *Parcel) Deliver(finalPrice, driverCommission, platformFee float64, now time.Time) error {
	if finalPrice <= 0 {
		return errs.NewInvalidAmountError("finalPrice", finalPrice)
	}
	if driverCommission < 0 {
		return errs.NewInvalidAmountError("driverCommission", driverCommission)
	}
	if platformFee < 0 {
		return errs.NewInvalidAmountError("platformFee", platformFee)
	}
	if driverCommission+platformFee > finalPrice {
		return errs.NewInvalidAmountError("driverCommission+platformFee", driverCommission+platformFee)
	}

	newStatus, err := p.status.TransitionTo(StatusDelivered)
	if err != nil {
		return err
	}

	p.status = newStatus
	p.finalPrice = &finalPrice
	p.driverCommission = &driverCommission
	p.platformFee = &platformFee
	p.deliveredAt = &now
	return nil
}

// Cancel terminates the delivery from any non-terminal state.
// The reason is required. The driver reference is cleared so the
// driver-iff-active invariant holds for cancelled parcels.
func (p *Parcel) Cancel(reason string, now time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancelReason")
	}

	newStatus, err := p.status.TransitionTo(StatusCancelled)
	if err != nil {
		return err
	}

	p.status = newStatus
	p.driverID = nil
	p.cancelReason = reason
	p.cancelledAt = &now
	return nil
}

// MarkPaymentStatus updates the settlement state of the sender's payment.
// Refunds are only possible for payments that actually cleared.
func (p *Parcel) MarkPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == PaymentStatusRefunded && p.paymentStatus != PaymentStatusPaid {
		return errs.NewInvalidTransitionError("parcel payment", p.paymentStatus.String(), status.String())
	}
	p.paymentStatus = status
	return nil
}

// Rate records the sender's post-delivery rating and comment.
// Only delivered parcels can be rated, and only once.
func (p *Parcel) Rate(rating float64, comment string) error {
	if p.status != StatusDelivered {
		return errs.NewInvalidTransitionError("parcel", p.status.String(), "rated")
	}
	if p.rating != nil {
		return errs.NewValueIsInvalidError("parcel is already rated")
	}
	if rating < 0 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 0, 5)
	}
	p.rating = &rating
	p.ratingComment = comment
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setSenderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("senderId", err)
	}
	p.senderID = id
	return nil
}

func (p *Parcel) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	p.description = description
	return nil
}

func (p *Parcel) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewInvalidAmountError("price", price)
	}
	p.price = price
	return nil
}

func (p *Parcel) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.paymentMethod = method
	return nil
}

func (p *Parcel) setWaypoints(pickup, dropoff Waypoint) error {
	if err := pickup.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup", err)
	}
	if err := dropoff.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("dropoff", err)
	}
	p.pickup = pickup
	p.dropoff = dropoff
	return nil
}
