package queries

import (
	"errors"

	"courierops/internal/pkg/guard"
)

var ErrGetParcelStatsQueryIsNotConstructed = errors.New(
	"GetParcelStatsQuery must be created via NewGetParcelStatsQuery constructor",
)

// GetParcelStatsQuery retrieves aggregate counts and revenue sums over all
// parcels. Monetary sums only accumulate from delivered parcels, because
// final prices and fee breakdowns exist nowhere else.
type GetParcelStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetParcelStatsQuery creates a query for parcel statistics.
func NewGetParcelStatsQuery() GetParcelStatsQuery {
	return GetParcelStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetParcelStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelStatsQueryIsNotConstructed)
}

// GetParcelStatsQueryResponse carries parcel counts and revenue totals.
// Active covers accepted, picked_up, and in_transit parcels.
type GetParcelStatsQueryResponse struct {
	Total                 int64
	Pending               int64
	Active                int64
	Delivered             int64
	Cancelled             int64
	TotalFinalPrice       float64
	TotalDriverCommission float64
	TotalPlatformFee      float64
}
