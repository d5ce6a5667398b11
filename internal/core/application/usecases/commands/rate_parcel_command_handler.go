package commands

import (
	"context"

	"courierops/internal/pkg/errs"
)

// RateParcelCommandHandler records a sender's rating on a delivered parcel
// and folds it into the driver's running average, both in one transaction.
type RateParcelCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewRateParcelCommandHandler creates a handler for parcel rating.
// Requires a DeliveryUoWFactory spanning parcel and driver repositories.
func NewRateParcelCommandHandler(uowFactory DeliveryUoWFactory) RateParcelCommandHandler {
	return RateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating command.
// Only delivered parcels can be rated, and only once; both rules are
// enforced by the aggregate.
func (h RateParcelCommandHandler) Handle(ctx context.Context, cmd RateParcelCommand) error {
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

	if err = p.Rate(cmd.Rating(), cmd.Comment()); err != nil {
		return err
	}

	// Rate succeeds only on delivered parcels, which always carry a driver.
	driverID := p.Driver()
	if driverID == nil {
		return errs.NewInconsistentStateError("parcelDriver", p.ID().String())
	}

	driverRepo := uow.DriverRepository()
	d, err := driverRepo.Get(ctx, *driverID)
	if err != nil {
		return err
	}

	if err = d.ApplyRating(cmd.Rating()); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
