package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDriverStatsQueryHandler computes driver statistics with a single
// full-scan aggregation query.
type GetDriverStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverStatsQueryHandler creates a handler for driver statistics.
// Requires a GORM database connection for query execution.
func NewGetDriverStatsQueryHandler(db *gorm.DB) GetDriverStatsQueryHandler {
	return GetDriverStatsQueryHandler{db: db}
}

// Handle executes the aggregation and returns the roster breakdown.
func (h GetDriverStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDriverStatsQuery,
) (GetDriverStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverStatsQueryResponse{}, err
	}

	var response GetDriverStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'suspended'),
			COUNT(*) FILTER (WHERE status = 'rejected'),
			COUNT(*) FILTER (WHERE is_online),
			COUNT(*) FILTER (WHERE is_available)
		FROM drivers
	`).Row()

	if err := row.Scan(
		&response.Total,
		&response.Pending,
		&response.Approved,
		&response.Suspended,
		&response.Rejected,
		&response.Online,
		&response.Available,
	); err != nil {
		return GetDriverStatsQueryResponse{}, err
	}

	return response, nil
}
