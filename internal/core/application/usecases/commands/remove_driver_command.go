package commands

import (
	"errors"

	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/pkg/guard"
)

var ErrRemoveDriverCommandIsNotConstructed = errors.New(
	"RemoveDriverCommand must be created via NewRemoveDriverCommand constructor",
)

// RemoveDriverCommand represents an admin's request to delete a driver
// profile and revert the owning user's account to a client.
type RemoveDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveDriverCommand creates a command to remove a driver profile.
func NewRemoveDriverCommand(driverID kernel.UUID) (RemoveDriverCommand, error) {
	cmd := RemoveDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDriverID(driverID); err != nil {
		return RemoveDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveDriverCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDriverCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver being removed.
func (c RemoveDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *RemoveDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.driverID = id
	return nil
}
