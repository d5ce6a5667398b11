// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Every aggregation runs a full scan at call time; nothing is materialized,
// so the numbers always reflect the current rows.
package queries

import (
	"errors"

	"courierops/internal/pkg/guard"
)

var ErrGetApplicationStatsQueryIsNotConstructed = errors.New(
	"GetApplicationStatsQuery must be created via NewGetApplicationStatsQuery constructor",
)

// GetApplicationStatsQuery retrieves aggregate counts over driver
// applications, broken down by review status.
type GetApplicationStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetApplicationStatsQuery creates a query for application statistics.
func NewGetApplicationStatsQuery() GetApplicationStatsQuery {
	return GetApplicationStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetApplicationStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetApplicationStatsQueryIsNotConstructed)
}

// GetApplicationStatsQueryResponse carries the application counts.
// Sums and counts over an empty table are zero.
type GetApplicationStatsQueryResponse struct {
	Total       int64
	Pending     int64
	UnderReview int64
	Approved    int64
	Rejected    int64
	OnHold      int64
}
