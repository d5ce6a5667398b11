package queries

import (
	"errors"

	"courierops/internal/pkg/guard"
)

var ErrGetNotificationSummaryQueryIsNotConstructed = errors.New(
	"GetNotificationSummaryQuery must be created via NewGetNotificationSummaryQuery constructor",
)

// GetNotificationSummaryQuery retrieves the operational advisory digest:
// conditions across applications, payments, and drivers that need an
// operator's attention.
type GetNotificationSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetNotificationSummaryQuery creates a query for the advisory digest.
func NewGetNotificationSummaryQuery() GetNotificationSummaryQuery {
	return GetNotificationSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationSummaryQueryIsNotConstructed)
}

// AdvisoryResponse is a single actionable condition in the digest.
type AdvisoryResponse struct {
	Severity string
	Message  string
	Count    int
}

// GetNotificationSummaryQueryResponse carries the advisory digest.
// TotalAffected is the sum of counts across all advisories.
type GetNotificationSummaryQueryResponse struct {
	Advisories    []AdvisoryResponse
	TotalAffected int
}
