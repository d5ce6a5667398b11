package commands

import (
	"context"
	"time"

	"courierops/internal/core/domain/model/driver"
	"courierops/internal/core/domain/model/parcel"
	"courierops/internal/core/domain/services"
	"courierops/internal/pkg/errs"
)

// TransitionParcelCommandHandler drives the parcel state machine.
//
// Per-target behavior:
//   - accepted: the accepting driver must exist, be approved, and be
//     available; the parcel records the driver and assignedAt
//   - picked_up / in_transit: plain forward moves with timestamps
//   - delivered: the fee schedule resolves the final price from the asking
//     price and counter-offers and quotes the commission/fee breakdown; the
//     driver's commission is credited to pendingEarnings and the trip counter
//     incremented in the same transaction as the parcel write
//   - cancelled: records the reason and releases the driver reference
//
// Any move not on the forward chain fails with an invalid-transition error
// from the aggregate itself.
type TransitionParcelCommandHandler struct {
	uowFactory  DeliveryUoWFactory
	feeSchedule services.FeeSchedule
}

// NewTransitionParcelCommandHandler creates a handler for parcel transitions.
// Requires a DeliveryUoWFactory and the configured fee schedule for the
// delivery settlement path.
func NewTransitionParcelCommandHandler(
	uowFactory DeliveryUoWFactory,
	feeSchedule services.FeeSchedule,
) (TransitionParcelCommandHandler, error) {
	if err := feeSchedule.Validate(); err != nil {
		return TransitionParcelCommandHandler{}, err
	}

	return TransitionParcelCommandHandler{
		uowFactory:  uowFactory,
		feeSchedule: feeSchedule,
	}, nil
}

// Handle processes the transition command.
func (h TransitionParcelCommandHandler) Handle(ctx context.Context, cmd TransitionParcelCommand) error {
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

	parcelRepo := uow.ParcelRepository()

	p, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	switch cmd.Target() { //nolint:exhaustive //pending is unreachable, the aggregate rejects it
	case parcel.StatusAccepted:
		err = h.accept(ctx, uow, p, cmd, now)
	case parcel.StatusPickedUp:
		err = p.PickUp(now)
	case parcel.StatusInTransit:
		err = p.StartTransit(now)
	case parcel.StatusDelivered:
		err = h.deliver(ctx, uow, p, now)
	case parcel.StatusCancelled:
		err = p.Cancel(cmd.CancelReason(), now)
	default:
		_, err = p.Status().TransitionTo(cmd.Target())
	}
	if err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// accept verifies the accepting driver is approved and available before
// assigning the parcel.
func (h TransitionParcelCommandHandler) accept(
	ctx context.Context, uow DeliveryUoW, p *parcel.Parcel, cmd TransitionParcelCommand, now time.Time,
) error {
	d, err := uow.DriverRepository().Get(ctx, *cmd.DriverID())
	if err != nil {
		return err
	}

	if d.Status() != driver.StatusApproved {
		return errs.NewInvalidTransitionError("driver", d.Status().String(), "accepting parcels")
	}
	if !d.IsAvailable() {
		return errs.NewValueIsInvalidError("driver is not available for new parcels")
	}

	return p.Accept(d.ID(), now)
}

// deliver settles the delivery: resolves the final price, computes the
// commission/fee breakdown, and credits the driver inside the transaction.
func (h TransitionParcelCommandHandler) deliver(
	ctx context.Context, uow DeliveryUoW, p *parcel.Parcel, now time.Time,
) error {
	finalPrice, err := h.feeSchedule.FinalPrice(p.Price(), p.SenderCounterOffer(), p.DriverCounterOffer())
	if err != nil {
		return err
	}

	quote, err := h.feeSchedule.QuoteFor(finalPrice)
	if err != nil {
		return err
	}

	driverID := p.Driver()
	if driverID == nil {
		return errs.NewInconsistentStateError("parcelDriver", p.ID().String())
	}

	if err = p.Deliver(finalPrice, quote.DriverCommission, quote.PlatformFee, now); err != nil {
		return err
	}

	driverRepo := uow.DriverRepository()
	d, err := driverRepo.Get(ctx, *driverID)
	if err != nil {
		return err
	}

	if err = d.CreditDelivery(quote.DriverCommission); err != nil {
		return err
	}

	return driverRepo.Update(ctx, d)
}
