package commands

import (
	"errors"

	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/core/domain/model/parcel"
	"courierops/internal/pkg/errs"
	"courierops/internal/pkg/guard"
)

var ErrTransitionParcelCommandIsNotConstructed = errors.New(
	"TransitionParcelCommand must be created via NewTransitionParcelCommand constructor",
)

// TransitionParcelCommand represents a request to move a parcel through its
// delivery state machine. Acceptance carries the accepting driver's id;
// cancellation carries the reason.
type TransitionParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID     kernel.UUID
	target       parcel.Status
	driverID     *kernel.UUID
	cancelReason string

	guard guard.ConstructorGuard
}

// NewTransitionParcelCommand creates a command to transition a parcel.
//
// Validation rules:
//   - target must be a recognized status
//   - target accepted requires a valid driverID
//   - target cancelled requires a non-empty reason
func NewTransitionParcelCommand(
	parcelID kernel.UUID,
	target parcel.Status,
	driverID *kernel.UUID,
	cancelReason string,
) (TransitionParcelCommand, error) {
	cmd := TransitionParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setTarget(target, driverID, cancelReason),
	); err != nil {
		return TransitionParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionParcelCommand) Validate() error {
	return c.guard.Validate(ErrTransitionParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel being transitioned.
func (c TransitionParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Target returns the status the parcel is being moved to.
func (c TransitionParcelCommand) Target() parcel.Status {
	return c.target
}

// DriverID returns the accepting driver's identifier, or nil.
func (c TransitionParcelCommand) DriverID() *kernel.UUID {
	return c.driverID
}

// CancelReason returns the reason accompanying a cancellation.
func (c TransitionParcelCommand) CancelReason() string {
	return c.cancelReason
}

func (c *TransitionParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *TransitionParcelCommand) setTarget(target parcel.Status, driverID *kernel.UUID, cancelReason string) error {
	if err := target.Validate(); err != nil {
		return err
	}

	switch target { //nolint:exhaustive //only acceptance and cancellation carry extra data
	case parcel.StatusAccepted:
		if driverID == nil {
			return errs.NewValueIsRequiredError("driverId")
		}
		if err := driverID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("driverId", err)
		}
	case parcel.StatusCancelled:
		if cancelReason == "" {
			return errs.NewValueIsRequiredError("cancelReason")
		}
	}

	c.target = target
	c.driverID = driverID
	c.cancelReason = cancelReason
	return nil
}
