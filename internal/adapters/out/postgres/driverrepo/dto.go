// Package driverrepo provides data transfer objects and mapping functions
// for driver persistence. It implements the repository pattern for the
// driver aggregate, converting between domain entities and database rows.
package driverrepo

import (
	"time"

	"courierops/internal/core/domain/model/driver"
	"courierops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver
// aggregates. The unique index on LicensePlate enforces plate uniqueness
// across the whole roster; the unique index on UserID enforces the 1:1
// user-to-driver relationship.
type DriverDTO struct {
	ID               uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex"`
	VehicleType      string      `gorm:"type:varchar(64);not null"`
	VehicleModel     string      `gorm:"type:varchar(128)"`
	LicenseNumber    string      `gorm:"type:varchar(64);not null"`
	LicensePlate     string      `gorm:"type:varchar(32);not null;uniqueIndex"`
	Location         LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	IsAvailable      bool        `gorm:"not null"`
	IsOnline         bool        `gorm:"not null"`
	Rating           float64     `gorm:"type:numeric(3,2);not null"`
	RatingCount      int         `gorm:"type:int;not null"`
	TotalTrips       int         `gorm:"type:int;not null"`
	Status           string      `gorm:"type:varchar(32);not null;index"`
	SuspensionReason string      `gorm:"type:text"`
	SuspendedAt      *time.Time
	ApprovedAt       *time.Time
	TotalEarnings    float64 `gorm:"type:numeric(12,2);not null"`
	PendingEarnings  float64 `gorm:"type:numeric(12,2);not null"`
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// LocationDTO represents the embedded coordinates within the drivers table.
type LocationDTO struct {
	Latitude  float64 `gorm:"type:numeric(9,6)"`
	Longitude float64 `gorm:"type:numeric(9,6)"`
}

// fromDomain converts a driver aggregate to its database representation.
func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:            d.ID().Bytes(),
		UserID:        d.UserID().Bytes(),
		VehicleType:   d.VehicleType(),
		VehicleModel:  d.VehicleModel(),
		LicenseNumber: d.LicenseNumber(),
		LicensePlate:  d.LicensePlate(),
		Location: LocationDTO{
			Latitude:  d.Location().Latitude(),
			Longitude: d.Location().Longitude(),
		},
		IsAvailable:      d.IsAvailable(),
		IsOnline:         d.IsOnline(),
		Rating:           d.Rating(),
		RatingCount:      d.RatingCount(),
		TotalTrips:       d.TotalTrips(),
		Status:           d.Status().String(),
		SuspensionReason: d.SuspensionReason(),
		SuspendedAt:      d.SuspendedAt(),
		ApprovedAt:       d.ApprovedAt(),
		TotalEarnings:    d.TotalEarnings(),
		PendingEarnings:  d.PendingEarnings(),
	}
}

// toDomain converts a database row back into a driver aggregate using
// RestoreDriver, which re-validates the persisted state.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewLocation(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	status, err := driver.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		userID,
		dto.VehicleType,
		dto.VehicleModel,
		dto.LicenseNumber,
		dto.LicensePlate,
		location,
		dto.IsAvailable,
		dto.IsOnline,
		dto.Rating,
		dto.RatingCount,
		dto.TotalTrips,
		status,
		dto.SuspensionReason,
		dto.SuspendedAt,
		dto.ApprovedAt,
		dto.TotalEarnings,
		dto.PendingEarnings,
	)
}
