package queries

import (
	"context"
	"time"

	"courierops/internal/core/domain/services"

	"gorm.io/gorm"
)

// DefaultOverdueAge is how old a pending payment may grow before it counts
// as overdue and feeds the overdue advisory.
const DefaultOverdueAge = 7 * 24 * time.Hour

// GetNotificationSummaryQueryHandler builds the advisory digest by running
// the application, payment, and driver statistics queries and feeding their
// counts through the Advisor domain service.
type GetNotificationSummaryQueryHandler struct {
	applicationStats GetApplicationStatsQueryHandler
	paymentStats     GetPaymentStatsQueryHandler
	driverStats      GetDriverStatsQueryHandler
	advisor          services.Advisor
}

// NewGetNotificationSummaryQueryHandler creates a handler for the advisory
// digest. Requires a GORM database connection for query execution.
func NewGetNotificationSummaryQueryHandler(db *gorm.DB) GetNotificationSummaryQueryHandler {
	return GetNotificationSummaryQueryHandler{
		applicationStats: NewGetApplicationStatsQueryHandler(db),
		paymentStats:     NewGetPaymentStatsQueryHandler(db),
		driverStats:      NewGetDriverStatsQueryHandler(db),
		advisor:          services.NewAdvisor(),
	}
}

// Handle gathers the operational counts and returns the prioritized digest.
func (h GetNotificationSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationSummaryQuery,
) (GetNotificationSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNotificationSummaryQueryResponse{}, err
	}

	applications, err := h.applicationStats.Handle(ctx, NewGetApplicationStatsQuery())
	if err != nil {
		return GetNotificationSummaryQueryResponse{}, err
	}

	paymentStatsQuery, err := NewGetPaymentStatsQuery(time.Now().UTC().Add(-DefaultOverdueAge))
	if err != nil {
		return GetNotificationSummaryQueryResponse{}, err
	}

	payments, err := h.paymentStats.Handle(ctx, paymentStatsQuery)
	if err != nil {
		return GetNotificationSummaryQueryResponse{}, err
	}

	drivers, err := h.driverStats.Handle(ctx, NewGetDriverStatsQuery())
	if err != nil {
		return GetNotificationSummaryQueryResponse{}, err
	}

	summary := h.advisor.Summarize(services.OperationsSnapshot{
		PendingApplications:    int(applications.Pending),
		OverduePendingPayments: int(payments.OverduePending),
		FailedPayments:         int(payments.Failed),
		SuspendedDrivers:       int(drivers.Suspended),
	})

	response := GetNotificationSummaryQueryResponse{
		Advisories:    make([]AdvisoryResponse, 0, len(summary.Advisories)),
		TotalAffected: summary.TotalAffected,
	}
	for _, advisory := range summary.Advisories {
		response.Advisories = append(response.Advisories, AdvisoryResponse{
			Severity: advisory.Severity.String(),
			Message:  advisory.Message,
			Count:    advisory.Count,
		})
	}

	return response, nil
}
