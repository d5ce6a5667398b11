package queries

import (
	"errors"
	"time"

	"courierops/internal/pkg/errs"
	"courierops/internal/pkg/guard"
)

var ErrGetPaymentStatsQueryIsNotConstructed = errors.New(
	"GetPaymentStatsQuery must be created via NewGetPaymentStatsQuery constructor",
)

// GetPaymentStatsQuery retrieves aggregate counts and sums over driver
// payments. The overdue cutoff marks how old a pending payment may be before
// it counts as overdue; the advisory rules use seven days.
type GetPaymentStatsQuery struct {
	overdueBefore time.Time

	guard guard.ConstructorGuard
}

// NewGetPaymentStatsQuery creates a query for payment statistics.
// Pending payments created before overdueBefore are counted as overdue.
func NewGetPaymentStatsQuery(overdueBefore time.Time) (GetPaymentStatsQuery, error) {
	if overdueBefore.IsZero() {
		return GetPaymentStatsQuery{}, errs.NewValueIsRequiredError("overdueBefore")
	}

	return GetPaymentStatsQuery{
		overdueBefore: overdueBefore,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentStatsQueryIsNotConstructed)
}

// OverdueBefore returns the cutoff for counting pending payments as overdue.
func (q GetPaymentStatsQuery) OverdueBefore() time.Time {
	return q.overdueBefore
}

// GetPaymentStatsQueryResponse carries payment counts and monetary sums.
// PendingPayable is the total amount sitting in pending payments; sums over
// an empty table are zero.
type GetPaymentStatsQueryResponse struct {
	Total            int64
	Pending          int64
	Processing       int64
	Completed        int64
	Failed           int64
	OverduePending   int64
	TotalAmount      float64
	TotalNetAmount   float64
	TotalPlatformFee float64
	PendingPayable   float64
}
