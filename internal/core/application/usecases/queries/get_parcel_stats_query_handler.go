package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetParcelStatsQueryHandler computes parcel statistics with a single
// full-scan aggregation query. COALESCE keeps sums at zero when no parcel
// has been delivered yet.
type GetParcelStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelStatsQueryHandler creates a handler for parcel statistics.
// Requires a GORM database connection for query execution.
func NewGetParcelStatsQueryHandler(db *gorm.DB) GetParcelStatsQueryHandler {
	return GetParcelStatsQueryHandler{db: db}
}

// Handle executes the aggregation and returns counts plus revenue sums.
func (h GetParcelStatsQueryHandler) Handle(
	ctx context.Context,
	query GetParcelStatsQuery,
) (GetParcelStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelStatsQueryResponse{}, err
	}

	var response GetParcelStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status IN ('accepted', 'picked_up', 'in_transit')),
			COUNT(*) FILTER (WHERE status = 'delivered'),
			COUNT(*) FILTER (WHERE status = 'cancelled'),
			COALESCE(SUM(final_price), 0),
			COALESCE(SUM(driver_commission), 0),
			COALESCE(SUM(platform_fee), 0)
		FROM parcels
	`).Row()

	if err := row.Scan(
		&response.Total,
		&response.Pending,
		&response.Active,
		&response.Delivered,
		&response.Cancelled,
		&response.TotalFinalPrice,
		&response.TotalDriverCommission,
		&response.TotalPlatformFee,
	); err != nil {
		return GetParcelStatsQueryResponse{}, err
	}

	return response, nil
}
