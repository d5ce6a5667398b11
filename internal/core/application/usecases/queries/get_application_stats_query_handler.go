package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetApplicationStatsQueryHandler computes application statistics with a
// single full-scan aggregation query.
type GetApplicationStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetApplicationStatsQueryHandler creates a handler for application statistics.
// Requires a GORM database connection for query execution.
func NewGetApplicationStatsQueryHandler(db *gorm.DB) GetApplicationStatsQueryHandler {
	return GetApplicationStatsQueryHandler{db: db}
}

// Handle executes the aggregation and returns the per-status breakdown.
func (h GetApplicationStatsQueryHandler) Handle(
	ctx context.Context,
	query GetApplicationStatsQuery,
) (GetApplicationStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetApplicationStatsQueryResponse{}, err
	}

	var response GetApplicationStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'under_review'),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'rejected'),
			COUNT(*) FILTER (WHERE status = 'on_hold')
		FROM applications
	`).Row()

	if err := row.Scan(
		&response.Total,
		&response.Pending,
		&response.UnderReview,
		&response.Approved,
		&response.Rejected,
		&response.OnHold,
	); err != nil {
		return GetApplicationStatsQueryResponse{}, err
	}

	return response, nil
}
