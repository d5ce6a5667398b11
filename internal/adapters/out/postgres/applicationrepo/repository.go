package applicationrepo

import (
	"context"
	"errors"

	"courierops/internal/core/domain/model/application"
	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormApplicationRepository implements ApplicationRepository using GORM.
type GormApplicationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormApplicationRepository creates a new GORM application repository.
func NewGormApplicationRepository(db *gorm.DB, tracker aggregateTracker) *GormApplicationRepository {
	return &GormApplicationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new application to the database. The unique index on
// applicant_id turns a second application for the same user into a
// duplicate-key error.
func (r *GormApplicationRepository) Add(ctx context.Context, aggregate *application.Application) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateKeyErrorWithCause("applicantId", aggregate.ApplicantID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing application to the database.
func (r *GormApplicationRepository) Update(ctx context.Context, aggregate *application.Application) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an application by ID.
func (r *GormApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*application.Application, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ApplicationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("application", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByApplicant retrieves the application submitted by a given user.
func (r *GormApplicationRepository) GetByApplicant(
	ctx context.Context,
	applicantID kernel.UUID,
) (*application.Application, error) {
	if err := applicantID.Validate(); err != nil {
		return nil, err
	}

	var dto ApplicationDTO
	if err := r.db.WithContext(ctx).First(&dto, "applicant_id = ?", applicantID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("application", applicantID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
