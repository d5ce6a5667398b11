package application

import (
	"errors"
	"time"

	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/pkg/errs"
)

// ErrApplicationIsNotConstructed is returned when an Application instance was
// not created through NewApplication or RestoreApplication. This ensures all
// applications are properly validated.
var ErrApplicationIsNotConstructed = errors.New(
	"Application must be created via NewApplication or RestoreApplication constructor")

// Application represents a prospective driver's submission awaiting admin
// review. It is the aggregate root for the review lifecycle.
//
// Application follows these invariants:
//   - Must have a valid unique identifier and applicant reference
//   - At most one application exists per applicant (enforced at creation
//     by the repository's uniqueness constraint)
//   - A rejection always carries a rejection reason
//   - An already-approved application cannot be approved again
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Application struct {
	id          kernel.UUID
	applicantID kernel.UUID

	fullName      string
	phone         string
	vehicleType   string
	vehicleModel  string
	licenseNumber string
	licensePlate  string

	status          Status
	reviewerID      *kernel.UUID
	reviewedAt      *time.Time
	notes           string
	rejectionReason string

	isConstructed bool
}

// NewApplication creates a new Application in pending status.
//
// Parameters:
//   - id: unique identifier for the application
//   - applicantID: the owning user submitting the application
//   - fullName, phone: the applicant's personal details
//   - vehicleType, vehicleModel: vehicle descriptors
//   - licenseNumber, licensePlate: license identifiers; the plate is copied
//     onto the Driver profile at approval and must be globally unique there
//
// Returns a validation error if any required field is missing or invalid.
func NewApplication(
	id kernel.UUID,
	applicantID kernel.UUID,
	fullName string,
	phone string,
	vehicleType string,
	vehicleModel string,
	licenseNumber string,
	licensePlate string,
) (*Application, error) {
	app := &Application{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		app.setID(id),
		app.setApplicantID(applicantID),
		app.setFullName(fullName),
		app.setVehicle(vehicleType, vehicleModel),
		app.setLicense(licenseNumber, licensePlate),
	); err != nil {
		return nil, err
	}

	app.phone = phone
	return app, nil
}

// RestoreApplication reconstructs an Application from persisted state.
// Used exclusively by the repository layer; validates the restored status.
func RestoreApplication(
	id kernel.UUID,
	applicantID kernel.UUID,
	fullName string,
	phone string,
	vehicleType string,
	vehicleModel string,
	licenseNumber string,
	licensePlate string,
	status Status,
	reviewerID *kernel.UUID,
	reviewedAt *time.Time,
	notes string,
	rejectionReason string,
) (*Application, error) {
	app, err := NewApplication(id, applicantID, fullName, phone, vehicleType, vehicleModel, licenseNumber, licensePlate)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	app.status = status
	app.reviewerID = reviewerID
	app.reviewedAt = reviewedAt
	app.notes = notes
	app.rejectionReason = rejectionReason
	return app, nil
}

// Validate ensures the Application instance was properly constructed.
// Returns ErrApplicationIsNotConstructed otherwise.
func (a *Application) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrApplicationIsNotConstructed
	}
	return nil
}

// IsEqual compares two applications by their unique identifiers.
func (a *Application) IsEqual(other *Application) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the application's unique identifier.
func (a *Application) ID() kernel.UUID {
	return a.id
}

// ApplicantID returns the owning user's identifier.
func (a *Application) ApplicantID() kernel.UUID {
	return a.applicantID
}

// FullName returns the applicant's full name.
func (a *Application) FullName() string {
	return a.fullName
}

// Phone returns the applicant's phone number.
func (a *Application) Phone() string {
	return a.phone
}

// VehicleType returns the declared vehicle type.
func (a *Application) VehicleType() string {
	return a.vehicleType
}

// VehicleModel returns the declared vehicle model.
func (a *Application) VehicleModel() string {
	return a.vehicleModel
}

// LicenseNumber returns the applicant's driving license number.
func (a *Application) LicenseNumber() string {
	return a.licenseNumber
}

// LicensePlate returns the declared vehicle license plate.
func (a *Application) LicensePlate() string {
	return a.licensePlate
}

// Status returns the current review status.
func (a *Application) Status() Status {
	return a.status
}

// ReviewerID returns the identity of the last reviewer, or nil if the
// application has never been reviewed.
func (a *Application) ReviewerID() *kernel.UUID {
	return a.reviewerID
}

// ReviewedAt returns the timestamp of the last review, or nil.
func (a *Application) ReviewedAt() *time.Time {
	return a.reviewedAt
}

// Notes returns the reviewer's notes from the last review.
func (a *Application) Notes() string {
	return a.notes
}

// RejectionReason returns the reason recorded with a rejection.
func (a *Application) RejectionReason() string {
	return a.rejectionReason
}

// Review applies an admin review decision to the application.
//
// Business rules:
//   - target must be one of the five recognized review states
//   - a rejection requires a non-empty rejection reason; for any other
//     target the reason argument is ignored
//   - re-approving an already-approved application is not allowed
//
// On success the reviewer identity and review timestamp are recorded and the
// notes are overwritten. The caller (the review command handler) is
// responsible for firing the approval side effects when the target is
// StatusApproved.
func (a *Application) Review(target Status, reviewerID kernel.UUID, notes string, rejectionReason string, now time.Time) error {
	if err := reviewerID.Validate(); err != nil {
		return err
	}

	if target == StatusRejected && rejectionReason == "" {
		return errs.NewValueIsRequiredError("rejectionReason")
	}

	newStatus, err := a.status.Review(target)
	if err != nil {
		return err
	}

	a.status = newStatus
	a.reviewerID = &reviewerID
	a.reviewedAt = &now
	a.notes = notes
	if target == StatusRejected {
		a.rejectionReason = rejectionReason
	} else {
		a.rejectionReason = ""
	}
	return nil
}

func (a *Application) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Application) setApplicantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("applicantId", err)
	}
	a.applicantID = id
	return nil
}

func (a *Application) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	a.fullName = fullName
	return nil
}

func (a *Application) setVehicle(vehicleType, vehicleModel string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicleType")
	}
	a.vehicleType = vehicleType
	a.vehicleModel = vehicleModel
	return nil
}

func (a *Application) setLicense(licenseNumber, licensePlate string) error {
	if licenseNumber == "" {
		return errs.NewValueIsRequiredError("licenseNumber")
	}
	if licensePlate == "" {
		return errs.NewValueIsRequiredError("licensePlate")
	}
	a.licenseNumber = licenseNumber
	a.licensePlate = licensePlate
	return nil
}
