package commands

import (
	"context"

	"courierops/internal/core/domain/model/driver"
)

// CreateDriverCommandHandler handles direct driver registration by an admin.
// The license plate's global uniqueness is enforced by the repository: a
// second driver with the same plate fails with a duplicate-key error.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
// Requires a DriverUoWFactory for transactional persistence.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver creation command.
func (h CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
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

	newDriver, err := driver.NewDriver(
		cmd.DriverID(),
		cmd.UserID(),
		cmd.VehicleType(),
		cmd.VehicleModel(),
		cmd.LicenseNumber(),
		cmd.LicensePlate(),
	)
	if err != nil {
		return err
	}

	if err = uow.DriverRepository().Add(ctx, newDriver); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
