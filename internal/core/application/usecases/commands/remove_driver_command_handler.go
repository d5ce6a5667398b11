package commands

import (
	"context"
	"fmt"

	"courierops/internal/core/domain/model/account"
	"courierops/internal/pkg/errs"
)

// RemoveDriverCommandHandler deletes a driver profile.
//
// Business rules:
//   - removal is blocked while the driver has parcels in accepted, picked_up,
//     or in_transit status (conflict with active work)
//   - on success the owning user's role reverts to client
//
// Example:
//
//	handler := NewRemoveDriverCommandHandler(uowFactory)
//	cmd, _ := NewRemoveDriverCommand(driverID)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrConflict) {
//	    // driver still has deliveries in flight
//	}
type RemoveDriverCommandHandler struct {
	uowFactory RemoveDriverUoWFactory
}

// NewRemoveDriverCommandHandler creates a handler for driver removal.
// Requires a RemoveDriverUoWFactory spanning driver, parcel, and user repositories.
func NewRemoveDriverCommandHandler(uowFactory RemoveDriverUoWFactory) RemoveDriverCommandHandler {
	return RemoveDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver removal command.
func (h RemoveDriverCommandHandler) Handle(ctx context.Context, cmd RemoveDriverCommand) error {
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

	driverRepo := uow.DriverRepository()

	d, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	activeCount, err := uow.ParcelRepository().CountActiveByDriver(ctx, d.ID())
	if err != nil {
		return err
	}
	if activeCount > 0 {
		return errs.NewConflictError("driverId",
			fmt.Sprintf("driver has %d active parcels", activeCount))
	}

	if err = uow.UserRepository().SetRole(ctx, d.UserID(), account.RoleClient); err != nil {
		return err
	}

	if err = driverRepo.Delete(ctx, d.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
