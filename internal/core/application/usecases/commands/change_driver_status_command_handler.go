package commands

import (
	"context"
	"time"
)

// ChangeDriverStatusCommandHandler applies admin-driven driver status changes.
// Suspension forces the driver offline and unavailable in the same write, so
// a suspended driver can never be dispatched.
type ChangeDriverStatusCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewChangeDriverStatusCommandHandler creates a handler for driver status changes.
func NewChangeDriverStatusCommandHandler(uowFactory DriverUoWFactory) ChangeDriverStatusCommandHandler {
	return ChangeDriverStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Returns an object-not-found error when the driver id does not resolve.
func (h ChangeDriverStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDriverStatusCommand) error {
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

	if err = d.ChangeStatus(cmd.Target(), cmd.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
