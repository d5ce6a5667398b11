package commands

import (
	"errors"

	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/pkg/errs"
	"courierops/internal/pkg/guard"
)

var ErrSubmitApplicationCommandIsNotConstructed = errors.New(
	"SubmitApplicationCommand must be created via NewSubmitApplicationCommand constructor",
)

// SubmitApplicationCommand represents a request to submit a new driver
// application. Encapsulates the applicant's personal and vehicle details.
//
// Example:
//
//	cmd, err := NewSubmitApplicationCommand(
//	    kernel.NewUUID(), applicantID,
//	    "Tendai Moyo", "+263771234567",
//	    "motorbike", "Honda XR150", "DL-482913", "AEZ-4821")
//	if err != nil {
//	    return fmt.Errorf("invalid application data: %w", err)
//	}
type SubmitApplicationCommand struct { //nolint:recvcheck //using for validation
	applicationID kernel.UUID
	applicantID   kernel.UUID
	fullName      string
	phone         string
	vehicleType   string
	vehicleModel  string
	licenseNumber string
	licensePlate  string

	guard guard.ConstructorGuard
}

// NewSubmitApplicationCommand creates a command to submit a driver application.
// Validates identifiers and required fields; phone and vehicle model may be empty.
func NewSubmitApplicationCommand(
	applicationID kernel.UUID,
	applicantID kernel.UUID,
	fullName string,
	phone string,
	vehicleType string,
	vehicleModel string,
	licenseNumber string,
	licensePlate string,
) (SubmitApplicationCommand, error) {
	cmd := SubmitApplicationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setApplicationID(applicationID),
		cmd.setApplicantID(applicantID),
		cmd.setFullName(fullName),
		cmd.setVehicleType(vehicleType),
		cmd.setLicense(licenseNumber, licensePlate),
	); err != nil {
		return SubmitApplicationCommand{}, err
	}

	cmd.phone = phone
	cmd.vehicleModel = vehicleModel
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitApplicationCommand) Validate() error {
	return c.guard.Validate(ErrSubmitApplicationCommandIsNotConstructed)
}

// ApplicationID returns the unique identifier for the application.
func (c SubmitApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

// ApplicantID returns the submitting user's identifier.
func (c SubmitApplicationCommand) ApplicantID() kernel.UUID {
	return c.applicantID
}

// FullName returns the applicant's full name.
func (c SubmitApplicationCommand) FullName() string {
	return c.fullName
}

// Phone returns the applicant's phone number.
func (c SubmitApplicationCommand) Phone() string {
	return c.phone
}

// VehicleType returns the declared vehicle type.
func (c SubmitApplicationCommand) VehicleType() string {
	return c.vehicleType
}

// VehicleModel returns the declared vehicle model.
func (c SubmitApplicationCommand) VehicleModel() string {
	return c.vehicleModel
}

// LicenseNumber returns the applicant's driving license number.
func (c SubmitApplicationCommand) LicenseNumber() string {
	return c.licenseNumber
}

// LicensePlate returns the declared vehicle license plate.
func (c SubmitApplicationCommand) LicensePlate() string {
	return c.licensePlate
}

func (c *SubmitApplicationCommand) setApplicationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.applicationID = id
	return nil
}

func (c *SubmitApplicationCommand) setApplicantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("applicantId", err)
	}
	c.applicantID = id
	return nil
}

func (c *SubmitApplicationCommand) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	c.fullName = fullName
	return nil
}

func (c *SubmitApplicationCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicleType")
	}
	c.vehicleType = vehicleType
	return nil
}

func (c *SubmitApplicationCommand) setLicense(licenseNumber, licensePlate string) error {
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
