package queries

import (
	"errors"

	"courierops/internal/pkg/guard"
)

var ErrGetDriverStatsQueryIsNotConstructed = errors.New(
	"GetDriverStatsQuery must be created via NewGetDriverStatsQuery constructor",
)

// GetDriverStatsQuery retrieves aggregate counts over the driver roster.
type GetDriverStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDriverStatsQuery creates a query for driver statistics.
func NewGetDriverStatsQuery() GetDriverStatsQuery {
	return GetDriverStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDriverStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverStatsQueryIsNotConstructed)
}

// GetDriverStatsQueryResponse carries driver counts broken down by status
// plus online and availability totals.
type GetDriverStatsQueryResponse struct {
	Total     int64
	Pending   int64
	Approved  int64
	Suspended int64
	Rejected  int64
	Online    int64
	Available int64
}
