// Package applicationrepo provides data transfer objects and mapping
// functions for driver application persistence. It implements the repository
// pattern for the application aggregate, converting between domain entities
// and database rows.
package applicationrepo

import (
	"time"

	"courierops/internal/core/domain/model/application"
	"courierops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ApplicationDTO represents the database structure for persisting driver
// application aggregates. The unique index on ApplicantID enforces the
// one-application-per-user rule at the storage level.
type ApplicationDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ApplicantID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	FullName        string     `gorm:"type:varchar(255);not null"`
	Phone           string     `gorm:"type:varchar(32)"`
	VehicleType     string     `gorm:"type:varchar(64);not null"`
	VehicleModel    string     `gorm:"type:varchar(128)"`
	LicenseNumber   string     `gorm:"type:varchar(64);not null"`
	LicensePlate    string     `gorm:"type:varchar(32);not null"`
	Status          string     `gorm:"type:varchar(32);not null;index"`
	ReviewerID      *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt      *time.Time
	Notes           string `gorm:"type:text"`
	RejectionReason string `gorm:"type:text"`
}

// TableName overrides GORM's default naming to use "applications".
func (ApplicationDTO) TableName() string {
	return "applications"
}

// fromDomain converts an application aggregate to its database representation.
func fromDomain(app *application.Application) ApplicationDTO {
	var reviewerID *uuid.UUID
	if app.ReviewerID() != nil {
		raw := app.ReviewerID().Bytes()
		reviewerID = &raw
	}

	return ApplicationDTO{
		ID:              app.ID().Bytes(),
		ApplicantID:     app.ApplicantID().Bytes(),
		FullName:        app.FullName(),
		Phone:           app.Phone(),
		VehicleType:     app.VehicleType(),
		VehicleModel:    app.VehicleModel(),
		LicenseNumber:   app.LicenseNumber(),
		LicensePlate:    app.LicensePlate(),
		Status:          app.Status().String(),
		ReviewerID:      reviewerID,
		ReviewedAt:      app.ReviewedAt(),
		Notes:           app.Notes(),
		RejectionReason: app.RejectionReason(),
	}
}

// toDomain converts a database row back into an application aggregate using
// RestoreApplication, which re-validates the persisted state.
func toDomain(dto ApplicationDTO) (*application.Application, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	applicantID, err := kernel.UUIDFromBytes(dto.ApplicantID[:])
	if err != nil {
		return nil, err
	}

	status, err := application.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var reviewerID *kernel.UUID
	if dto.ReviewerID != nil {
		rID, reviewerErr := kernel.UUIDFromBytes((*dto.ReviewerID)[:])
		if reviewerErr != nil {
			return nil, reviewerErr
		}
		reviewerID = &rID
	}

	return application.RestoreApplication(
		id,
		applicantID,
		dto.FullName,
		dto.Phone,
		dto.VehicleType,
		dto.VehicleModel,
		dto.LicenseNumber,
		dto.LicensePlate,
		status,
		reviewerID,
		dto.ReviewedAt,
		dto.Notes,
		dto.RejectionReason,
	)
}
