package paymentrepo

import (
	"context"
	"errors"
	"time"

	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/core/domain/model/payment"
	"courierops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment to the database.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing payment to the database. CreatedAt is omitted
// from the update so the insert timestamp survives status changes.
func (r *GormPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Omit("created_at").Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a payment by ID.
func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsPayoutForPeriod reports whether the driver already has a payout
// covering the given period. Payout generation checks this before creating
// a new record so re-runs stay idempotent.
func (r *GormPaymentRepository) ExistsPayoutForPeriod(
	ctx context.Context,
	driverID kernel.UUID,
	periodStart, periodEnd time.Time,
) (bool, error) {
	if err := driverID.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&PaymentDTO{}).
		Where("driver_id = ?", driverID.Bytes()).
		Where("type = ?", payment.TypePayout.String()).
		Where("period_start = ? AND period_end = ?", periodStart, periodEnd).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
