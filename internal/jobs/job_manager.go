package jobs

import (
	"fmt"
	"log/slog"

	"courierops/internal/core/application/usecases/commands"
	"courierops/internal/core/application/usecases/queries"
	"courierops/internal/core/domain/model/payment"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	payoutGenerationJob *PayoutGenerationJob
	advisoryDigestJob   *AdvisoryDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers and cron schedules as dependencies to wire up execution.
func NewJobManager(
	generatePayoutsHandler commands.GeneratePayoutsCommandHandler,
	notificationSummaryHandler queries.GetNotificationSummaryQueryHandler,
	payoutMethod payment.Method,
	payoutSchedule string,
	digestSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		payoutGenerationJob: NewPayoutGenerationJob(generatePayoutsHandler, payoutMethod, payoutSchedule, logger),
		advisoryDigestJob:   NewAdvisoryDigestJob(notificationSummaryHandler, digestSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.payoutGenerationJob.Start(); err != nil {
		return fmt.Errorf("failed to start payout generation job: %w", err)
	}

	if err := jm.advisoryDigestJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.payoutGenerationJob.Stop()
		return fmt.Errorf("failed to start advisory digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.advisoryDigestJob.Stop()
	jm.payoutGenerationJob.Stop()
}
