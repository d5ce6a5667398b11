// Package paymentrepo provides data transfer objects and mapping functions
// for driver payment persistence. It implements the repository pattern for
// the payment aggregate, converting between domain entities and database
// rows.
package paymentrepo

import (
	"time"

	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payment
// aggregates. CreatedAt is stamped by GORM on insert and feeds the overdue
// pending-payment statistics; it is not part of the domain aggregate.
type PaymentDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DriverID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	Amount            float64    `gorm:"type:numeric(12,2);not null"`
	GrossEarnings     float64    `gorm:"type:numeric(12,2);not null"`
	PlatformFeeAmount float64    `gorm:"type:numeric(12,2);not null"`
	NetAmount         float64    `gorm:"type:numeric(12,2);not null"`
	Method            string     `gorm:"type:varchar(32);not null"`
	Type              string     `gorm:"type:varchar(32);not null"`
	Status            string     `gorm:"type:varchar(32);not null;index"`
	PeriodStart       time.Time  `gorm:"not null"`
	PeriodEnd         time.Time  `gorm:"not null"`
	TransactionID     string     `gorm:"type:varchar(128)"`
	ProcessedBy       *uuid.UUID `gorm:"type:uuid"`
	ProcessedAt       *time.Time
	FailureReason     string    `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default naming to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment aggregate to its database representation.
func fromDomain(p *payment.Payment) PaymentDTO {
	var processedBy *uuid.UUID
	if p.ProcessedBy() != nil {
		raw := p.ProcessedBy().Bytes()
		processedBy = &raw
	}

	return PaymentDTO{
		ID:                p.ID().Bytes(),
		DriverID:          p.DriverID().Bytes(),
		Amount:            p.Amount(),
		GrossEarnings:     p.GrossEarnings(),
		PlatformFeeAmount: p.PlatformFeeAmount(),
		NetAmount:         p.NetAmount(),
		Method:            p.Method().String(),
		Type:              p.Type().String(),
		Status:            p.Status().String(),
		PeriodStart:       p.PeriodStart(),
		PeriodEnd:         p.PeriodEnd(),
		TransactionID:     p.TransactionID(),
		ProcessedBy:       processedBy,
		ProcessedAt:       p.ProcessedAt(),
		FailureReason:     p.FailureReason(),
	}
}

// toDomain converts a database row back into a payment aggregate using
// RestorePayment, which re-validates the persisted state.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	method, err := payment.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	paymentType, err := payment.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var processedBy *kernel.UUID
	if dto.ProcessedBy != nil {
		pID, processedErr := kernel.UUIDFromBytes((*dto.ProcessedBy)[:])
		if processedErr != nil {
			return nil, processedErr
		}
		processedBy = &pID
	}

	return payment.RestorePayment(
		id,
		driverID,
		dto.Amount,
		dto.GrossEarnings,
		dto.PlatformFeeAmount,
		method,
		paymentType,
		status,
		dto.PeriodStart,
		dto.PeriodEnd,
		dto.TransactionID,
		processedBy,
		dto.ProcessedAt,
		dto.FailureReason,
	)
}
