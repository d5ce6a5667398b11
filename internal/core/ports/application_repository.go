// Package ports defines repository interfaces for the courier marketplace
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"courierops/internal/core/domain/model/application"
	"courierops/internal/core/domain/model/kernel"
)

// ApplicationRepository defines the persistence contract for driver
// application aggregates.
type ApplicationRepository interface {
	// Add persists a new application aggregate to storage.
	// Fails with a duplicate-key error when the applicant already has one.
	Add(ctx context.Context, aggregate *application.Application) error

	// Update persists changes to an existing application aggregate.
	Update(ctx context.Context, aggregate *application.Application) error

	// Get retrieves an application aggregate by its unique identifier.
	// Returns an object-not-found error when the id does not resolve.
	Get(ctx context.Context, id kernel.UUID) (*application.Application, error)

	// GetByApplicant retrieves the application submitted by a given user,
	// or an object-not-found error when none exists.
	GetByApplicant(ctx context.Context, applicantID kernel.UUID) (*application.Application, error)
}
