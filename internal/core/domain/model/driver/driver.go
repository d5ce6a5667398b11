package driver

import (
	"errors"
	"time"

	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/pkg/errs"
)

const (
	// RatingMin is the lowest rating a driver can hold.
	RatingMin float64 = 0
	// RatingMax is the highest rating a driver can hold.
	RatingMax float64 = 5
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not
// created through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")

// Driver represents an approved courier's operational profile. It is the
// aggregate root for driver availability, earnings, and status.
//
// Driver follows these invariants:
//   - Must have a valid unique identifier and a 1:1 owning user reference
//   - License plate is globally unique across drivers (enforced by the
//     repository's uniqueness constraint)
//   - Rating stays within [0, 5]
//   - A suspended driver is never online or available
//   - pendingEarnings and totalEarnings are never negative
//
// Earnings flow: delivering a parcel credits the driver's commission into
// pendingEarnings; completing a payout Payment settles the covered amount
// from pendingEarnings into totalEarnings.
type Driver struct {
	id     kernel.UUID
	userID kernel.UUID

	vehicleType   string
	vehicleModel  string
	licenseNumber string
	licensePlate  string

	location    kernel.Location
	isAvailable bool
	isOnline    bool

	rating      float64
	ratingCount int
	totalTrips  int

	status           Status
	suspensionReason string
	suspendedAt      *time.Time
	approvedAt       *time.Time

	totalEarnings   float64
	pendingEarnings float64

	isConstructed bool
}

// NewDriver creates a new Driver profile in pending status at the origin
// location, offline and unavailable, with zeroed earnings and trips.
//
// Drivers created from an approved application should be approved immediately
// afterwards via Approve; drivers registered directly by an admin stay
// pending until reviewed.
func NewDriver(
	id kernel.UUID,
	userID kernel.UUID,
	vehicleType string,
	vehicleModel string,
	licenseNumber string,
	licensePlate string,
) (*Driver, error) {
	d := &Driver{
		status:        StatusPending,
		location:      kernel.OriginLocation(),
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setUserID(userID),
		d.setVehicle(vehicleType, vehicleModel),
		d.setLicense(licenseNumber, licensePlate),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persisted state.
// Used exclusively by the repository layer; validates restored values.
func RestoreDriver(
	id kernel.UUID,
	userID kernel.UUID,
	vehicleType string,
	vehicleModel string,
	licenseNumber string,
	licensePlate string,
	location kernel.Location,
	isAvailable bool,
	isOnline bool,
	rating float64,
	ratingCount int,
	totalTrips int,
	status Status,
	suspensionReason string,
	suspendedAt *time.Time,
	approvedAt *time.Time,
	totalEarnings float64,
	pendingEarnings float64,
) (*Driver, error) {
	d, err := NewDriver(id, userID, vehicleType, vehicleModel, licenseNumber, licensePlate)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(status.Validate(), location.Validate()); err != nil {
		return nil, err
	}
	if rating < RatingMin || rating > RatingMax {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}

	d.location = location
	d.isAvailable = isAvailable
	d.isOnline = isOnline
	d.rating = rating
	d.ratingCount = ratingCount
	d.totalTrips = totalTrips
	d.status = status
	d.suspensionReason = suspensionReason
	d.suspendedAt = suspendedAt
	d.approvedAt = approvedAt
	d.totalEarnings = totalEarnings
	d.pendingEarnings = pendingEarnings
	return d, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// UserID returns the owning user's identifier.
func (d *Driver) UserID() kernel.UUID {
	return d.userID
}

// VehicleType returns the vehicle type descriptor.
func (d *Driver) VehicleType() string {
	return d.vehicleType
}

// VehicleModel returns the vehicle model descriptor.
func (d *Driver) VehicleModel() string {
	return d.vehicleModel
}

// LicenseNumber returns the driving license number.
func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

// LicensePlate returns the globally unique vehicle license plate.
func (d *Driver) LicensePlate() string {
	return d.licensePlate
}

// Location returns the driver's last known position.
func (d *Driver) Location() kernel.Location {
	return d.location
}

// IsAvailable reports whether the driver accepts new parcels.
func (d *Driver) IsAvailable() bool {
	return d.isAvailable
}

// IsOnline reports whether the driver is currently connected.
func (d *Driver) IsOnline() bool {
	return d.isOnline
}

// Rating returns the driver's average rating in [0, 5].
func (d *Driver) Rating() float64 {
	return d.rating
}

// RatingCount returns how many ratings contributed to the average.
func (d *Driver) RatingCount() int {
	return d.ratingCount
}

// TotalTrips returns the number of delivered parcels.
func (d *Driver) TotalTrips() int {
	return d.totalTrips
}

// Status returns the driver's operational status.
func (d *Driver) Status() Status {
	return d.status
}

// SuspensionReason returns the reason recorded with the last suspension.
func (d *Driver) SuspensionReason() string {
	return d.suspensionReason
}

// SuspendedAt returns when the driver was last suspended, or nil.
func (d *Driver) SuspendedAt() *time.Time {
	return d.suspendedAt
}

// ApprovedAt returns when the driver was approved, or nil.
func (d *Driver) ApprovedAt() *time.Time {
	return d.approvedAt
}

// TotalEarnings returns the lifetime settled earnings.
func (d *Driver) TotalEarnings() float64 {
	return d.totalEarnings
}

// PendingEarnings returns earnings awaiting payout.
func (d *Driver) PendingEarnings() float64 {
	return d.pendingEarnings
}

// ChangeStatus applies an admin-driven status change.
//
// Business rules:
//   - target must be one of the four recognized statuses
//   - suspended requires a non-empty reason, stores it with the suspension
//     timestamp and forces the driver offline and unavailable
//   - approved stamps approvedAt
//   - for any other target the reason argument is ignored
func (d *Driver) ChangeStatus(target Status, reason string, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	switch target {
	case StatusSuspended:
		return d.Suspend(reason, now)
	case StatusApproved:
		d.Approve(now)
	default:
		d.status = target
	}
	return nil
}

// Approve marks the driver operational and stamps the approval time.
func (d *Driver) Approve(now time.Time) {
	d.status = StatusApproved
	d.approvedAt = &now
}

// Suspend bars the driver from dispatch. The reason is required; the driver
// is forced offline and unavailable so no new parcels can be assigned.
func (d *Driver) Suspend(reason string, now time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("suspensionReason")
	}

	d.status = StatusSuspended
	d.suspensionReason = reason
	d.suspendedAt = &now
	d.isOnline = false
	d.isAvailable = false
	return nil
}

// SetOnline updates the driver's connectivity flag.
// A suspended driver cannot go online.
func (d *Driver) SetOnline(online bool) error {
	if online && d.status == StatusSuspended {
		return errs.NewInvalidTransitionError("driver", d.status.String(), "online")
	}
	d.isOnline = online
	return nil
}

// SetAvailability updates whether the driver accepts new parcels.
// A suspended driver cannot become available.
func (d *Driver) SetAvailability(available bool) error {
	if available && d.status == StatusSuspended {
		return errs.NewInvalidTransitionError("driver", d.status.String(), "available")
	}
	d.isAvailable = available
	return nil
}

// MoveTo updates the driver's last known position.
func (d *Driver) MoveTo(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.location = location
	return nil
}

// CreditDelivery records a completed delivery: the driver's commission is
// added to pendingEarnings and the trip counter is incremented.
func (d *Driver) CreditDelivery(commission float64) error {
	if commission < 0 {
		return errs.NewInvalidAmountError("commission", commission)
	}
	d.pendingEarnings += commission
	d.totalTrips++
	return nil
}

// SettlePayout moves a payout amount from pendingEarnings to totalEarnings.
// The amount must be positive and cannot exceed the pending balance.
func (d *Driver) SettlePayout(amount float64) error {
	if amount <= 0 || amount > d.pendingEarnings {
		return errs.NewInvalidAmountError("payoutAmount", amount)
	}
	d.pendingEarnings -= amount
	d.totalEarnings += amount
	return nil
}

// ApplyRating folds a new parcel rating into the driver's running average.
// Ratings must fall within [RatingMin, RatingMax].
func (d *Driver) ApplyRating(rating float64) error {
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}
	total := d.rating*float64(d.ratingCount) + rating
	d.ratingCount++
	d.rating = total / float64(d.ratingCount)
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	d.userID = id
	return nil
}

func (d *Driver) setVehicle(vehicleType, vehicleModel string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicleType")
	}
	d.vehicleType = vehicleType
	d.vehicleModel = vehicleModel
	return nil
}

func (d *Driver) setLicense(licenseNumber, licensePlate string) error {
	if licenseNumber == "" {
		return errs.NewValueIsRequiredError("licenseNumber")
	}
	if licensePlate == "" {
		return errs.NewValueIsRequiredError("licensePlate")
	}
	d.licenseNumber = licenseNumber
	d.licensePlate = licensePlate
	return nil
}
