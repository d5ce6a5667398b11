package commands

import (
	"context"

	"courierops/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler handles the business logic for posting parcels.
// Creates new parcels in pending status with pending payment, ready for
// driver acceptance.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel creation.
// Requires a ParcelUoWFactory for transactional persistence.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel creation command.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
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

	p, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.SenderID(),
		cmd.Description(),
		cmd.Price(),
		cmd.PaymentMethod(),
		cmd.Pickup(),
		cmd.Dropoff(),
	)
	if err != nil {
		return err
	}

	if err = uow.ParcelRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
