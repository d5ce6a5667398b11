package commands

import (
	"errors"

	"courierops/internal/core/domain/model/driver"
	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/pkg/errs"
	"courierops/internal/pkg/guard"
)

var ErrChangeDriverStatusCommandIsNotConstructed = errors.New(
	"ChangeDriverStatusCommand must be created via NewChangeDriverStatusCommand constructor",
)

// ChangeDriverStatusCommand represents an admin's request to move a driver to
// a new operational status. Suspension requires a reason.
type ChangeDriverStatusCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	target   driver.Status
	reason   string

	guard guard.ConstructorGuard
}

// NewChangeDriverStatusCommand creates a command to change a driver's status.
// A suspension without a reason is rejected up front.
func NewChangeDriverStatusCommand(
	driverID kernel.UUID,
	target driver.Status,
	reason string,
) (ChangeDriverStatusCommand, error) {
	cmd := ChangeDriverStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setTarget(target, reason),
	); err != nil {
		return ChangeDriverStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDriverStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDriverStatusCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver being changed.
func (c ChangeDriverStatusCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Target returns the status the driver is being moved to.
func (c ChangeDriverStatusCommand) Target() driver.Status {
	return c.target
}

// Reason returns the reason accompanying the change.
func (c ChangeDriverStatusCommand) Reason() string {
	return c.reason
}

func (c *ChangeDriverStatusCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.driverID = id
	return nil
}

func (c *ChangeDriverStatusCommand) setTarget(target driver.Status, reason string) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == driver.StatusSuspended && reason == "" {
		return errs.NewValueIsRequiredError("suspensionReason")
	}
	c.target = target
	c.reason = reason
	return nil
}
