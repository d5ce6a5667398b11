package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPaymentStatsQueryHandler computes payment statistics with a single
// full-scan aggregation query.
type GetPaymentStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentStatsQueryHandler creates a handler for payment statistics.
// Requires a GORM database connection for query execution.
func NewGetPaymentStatsQueryHandler(db *gorm.DB) GetPaymentStatsQueryHandler {
	return GetPaymentStatsQueryHandler{db: db}
}

// Handle executes the aggregation and returns counts plus monetary sums.
func (h GetPaymentStatsQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentStatsQuery,
) (GetPaymentStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPaymentStatsQueryResponse{}, err
	}

	var response GetPaymentStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'processing'),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'failed'),
			COUNT(*) FILTER (WHERE status = 'pending' AND created_at < ?),
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(net_amount), 0),
			COALESCE(SUM(platform_fee_amount), 0),
			COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0)
		FROM payments
	`, query.OverdueBefore()).Row()

	if err := row.Scan(
		&response.Total,
		&response.Pending,
		&response.Processing,
		&response.Completed,
		&response.Failed,
		&response.OverduePending,
		&response.TotalAmount,
		&response.TotalNetAmount,
		&response.TotalPlatformFee,
		&response.PendingPayable,
	); err != nil {
		return GetPaymentStatsQueryResponse{}, err
	}

	return response, nil
}
