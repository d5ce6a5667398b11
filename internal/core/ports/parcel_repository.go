package ports

import (
	"context"

	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	// Returns an object-not-found error when the id does not resolve.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// CountActiveByDriver returns the number of parcels currently assigned
	// to the driver in accepted, picked_up, or in_transit status. Used to
	// block driver removal while work is in flight.
	CountActiveByDriver(ctx context.Context, driverID kernel.UUID) (int64, error)
}
