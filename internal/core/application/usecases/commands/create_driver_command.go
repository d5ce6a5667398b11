package commands

import (
	"errors"

	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/pkg/errs"
	"courierops/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents an admin's request to register a driver
// profile directly, bypassing the application flow. The driver starts in
// pending status.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	userID        kernel.UUID
	vehicleType   string
	vehicleModel  string
	licenseNumber string
	licensePlate  string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver profile.
func NewCreateDriverCommand(
	driverID kernel.UUID,
	userID kernel.UUID,
	vehicleType string,
	vehicleModel string,
	licenseNumber string,
	licensePlate string,
) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setUserID(userID),
		cmd.setVehicleType(vehicleType),
		cmd.setLicense(licenseNumber, licensePlate),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	cmd.vehicleModel = vehicleModel
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the unique identifier for the new driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// UserID returns the owning user's identifier.
func (c CreateDriverCommand) UserID() kernel.UUID {
	return c.userID
}

// VehicleType returns the vehicle type descriptor.
func (c CreateDriverCommand) VehicleType() string {
	return c.vehicleType
}

// VehicleModel returns the vehicle model descriptor.
func (c CreateDriverCommand) VehicleModel() string {
	return c.vehicleModel
}

// LicenseNumber returns the driving license number.
func (c CreateDriverCommand) LicenseNumber() string {
	return c.licenseNumber
}

// LicensePlate returns the vehicle license plate.
func (c CreateDriverCommand) LicensePlate() string {
	return c.licensePlate
}

func (c *CreateDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.driverID = id
	return nil
}

func (c *CreateDriverCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	c.userID = id
	return nil
}

func (c *CreateDriverCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicleType")
	}
	c.vehicleType = vehicleType
	return nil
}

func (c *CreateDriverCommand) setLicense(licenseNumber, licensePlate string) error {
	if licenseNumber == "" {
		return errs.NewValueIsRequiredError("licenseNumber")
	}
	if licensePlate == "" {
		return errs.NewValueIsRequiredError("licensePlate")
	}
	c.licenseNumber = licenseNumber
	c.licensePlate = licensePlate
	return nil
}
