package ports

import (
	"context"
	"time"

	"courierops/internal/core/domain/model/kernel"
	"courierops/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
type PaymentRepository interface {
	// Add persists a new payment aggregate to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment aggregate.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment aggregate by its unique identifier.
	// Returns an object-not-found error when the id does not resolve.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// ExistsPayoutForPeriod reports whether the driver already has a payout
	// covering the given period. Keeps payout generation idempotent.
	ExistsPayoutForPeriod(ctx context.Context, driverID kernel.UUID, periodStart, periodEnd time.Time) (bool, error)
}
