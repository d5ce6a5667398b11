// Package parcelrepo provides data transfer objects and mapping functions
// for parcel persistence. It implements the repository pattern for the
// parcel aggregate, converting between domain entities and database rows.
package parcelrepo

import (
	"time"

	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The financial columns (final_price, driver_commission,
// platform_fee) are nullable and only filled on delivery, matching the
// aggregate's delivered-only invariant.
type ParcelDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	SenderID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Description        string    `gorm:"type:text;not null"`
	Price              float64   `gorm:"type:numeric(12,2);not null"`
	SenderCounterOffer *float64  `gorm:"type:numeric(12,2)"`
	DriverCounterOffer *float64  `gorm:"type:numeric(12,2)"`
	FinalPrice         *float64  `gorm:"type:numeric(12,2)"`

	Pickup  WaypointDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff WaypointDTO `gorm:"embedded;embeddedPrefix:dropoff_"`

	Status   string     `gorm:"type:varchar(32);not null;index"`
	DriverID *uuid.UUID `gorm:"type:uuid;index"`

	PaymentMethod string `gorm:"type:varchar(32);not null"`
	PaymentStatus string `gorm:"type:varchar(32);not null"`

	DriverCommission *float64 `gorm:"type:numeric(12,2)"`
	PlatformFee      *float64 `gorm:"type:numeric(12,2)"`

	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time

	CancelReason  string   `gorm:"type:text"`
	Rating        *float64 `gorm:"type:numeric(3,2)"`
	RatingComment string   `gorm:"type:text"`
}

// TableName overrides GORM's default naming to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// WaypointDTO represents one embedded delivery endpoint within the parcels
// table: display name, street address, and coordinates.
type WaypointDTO struct {
	Name      string  `gorm:"type:varchar(255);not null"`
	Address   string  `gorm:"type:varchar(255);not null"`
	Latitude  float64 `gorm:"type:numeric(9,6)"`
	Longitude float64 `gorm:"type:numeric(9,6)"`
}

// fromDomain converts a parcel aggregate to its database representation.
func fromDomain(p *parcel.Parcel) ParcelDTO {
	var driverID *uuid.UUID
	if p.Driver() != nil {
		raw := p.Driver().Bytes()
		driverID = &raw
	}

	return ParcelDTO{
		ID:                 p.ID().Bytes(),
		SenderID:           p.SenderID().Bytes(),
		Description:        p.Description(),
		Price:              p.Price(),
		SenderCounterOffer: p.SenderCounterOffer(),
		DriverCounterOffer: p.DriverCounterOffer(),
		FinalPrice:         p.FinalPrice(),
		Pickup:             waypointFromDomain(p.Pickup()),
		Dropoff:            waypointFromDomain(p.Dropoff()),
		Status:             p.Status().String(),
		DriverID:           driverID,
		PaymentMethod:      p.PaymentMethod().String(),
		PaymentStatus:      p.PaymentStatus().String(),
		DriverCommission:   p.DriverCommission(),
		PlatformFee:        p.PlatformFee(),
		AssignedAt:         p.AssignedAt(),
		PickedUpAt:         p.PickedUpAt(),
		DeliveredAt:        p.DeliveredAt(),
		CancelledAt:        p.CancelledAt(),
		CancelReason:       p.CancelReason(),
		Rating:             p.Rating(),
		RatingComment:      p.RatingComment(),
	}
}

func waypointFromDomain(w parcel.Waypoint) WaypointDTO {
	return WaypointDTO{
		Name:      w.Name(),
		Address:   w.Address(),
		Latitude:  w.Location().Latitude(),
		Longitude: w.Location().Longitude(),
	}
}

// toDomain converts a database row back into a parcel aggregate using
// RestoreParcel, which re-checks the cross-field invariants so corrupted
// rows surface as inconsistent-state errors.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	pickup, err := waypointToDomain(dto.Pickup)
	if err != nil {
		return nil, err
	}

	dropoff, err := waypointToDomain(dto.Dropoff)
	if err != nil {
		return nil, err
	}

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	paymentMethod, err := parcel.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := parcel.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		senderID,
		dto.Description,
		dto.Price,
		dto.SenderCounterOffer,
		dto.DriverCounterOffer,
		dto.FinalPrice,
		pickup,
		dropoff,
		status,
		driverID,
		paymentMethod,
		paymentStatus,
		dto.DriverCommission,
		dto.PlatformFee,
		dto.AssignedAt,
		dto.PickedUpAt,
		dto.DeliveredAt,
		dto.CancelledAt,
		dto.CancelReason,
		dto.Rating,
		dto.RatingComment,
	)
}

func waypointToDomain(dto WaypointDTO) (parcel.Waypoint, error) {
	location, err := kernel.NewLocation(dto.Latitude, dto.Longitude)
	if err != nil {
		return parcel.Waypoint{}, err
	}

	return parcel.NewWaypoint(dto.Name, dto.Address, location)
}
