package ports

import (
	"context"

	"courierops/internal/core/domain/model/driver"
	"courierops/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	// Fails with a duplicate-key error when the license plate is taken.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Delete removes a driver aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a driver aggregate by its unique identifier.
	// Returns an object-not-found error when the id does not resolve.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetByUser retrieves the driver owned by a given user account,
	// or an object-not-found error when none exists.
	GetByUser(ctx context.Context, userID kernel.UUID) (*driver.Driver, error)

	// GetAllWithPendingEarnings retrieves every driver whose pending
	// earnings balance is positive. Used by payout generation.
	GetAllWithPendingEarnings(ctx context.Context) ([]*driver.Driver, error)
}
