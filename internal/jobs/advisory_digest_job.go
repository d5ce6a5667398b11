package jobs

import (
	"context"
	"log/slog"

	"courierops/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// AdvisoryDigestJob periodically runs the notification summary and writes the
// resulting advisories to the log, so operators see backlog pressure without
// polling the summary endpoint.
type AdvisoryDigestJob struct {
	handler  queries.GetNotificationSummaryQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAdvisoryDigestJob creates a new advisory digest job. The schedule is a
// six-field cron expression with seconds.
func NewAdvisoryDigestJob(
	handler queries.GetNotificationSummaryQueryHandler,
	schedule string,
	logger *slog.Logger,
) *AdvisoryDigestJob {
	return &AdvisoryDigestJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "advisory_digest_job"),
	}
}

// Start schedules the advisory digest.
func (j *AdvisoryDigestJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		summary, err := j.handler.Handle(ctx, queries.NewGetNotificationSummaryQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Advisory digest job failed", "error", err)
			return
		}

		if len(summary.Advisories) == 0 {
			j.logger.InfoContext(ctx, "Advisory digest: no advisories")
			return
		}

		for _, advisory := range summary.Advisories {
			j.logger.InfoContext(ctx, "Advisory",
				"severity", advisory.Severity,
				"message", advisory.Message,
				"count", advisory.Count,
			)
		}
		j.logger.InfoContext(ctx, "Advisory digest completed",
			"advisories", len(summary.Advisories),
			"totalAffected", summary.TotalAffected,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Advisory digest job started", "schedule", j.schedule)
	return nil
}

// Stop stops the advisory digest job.
func (j *AdvisoryDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Advisory digest job stopped")
}
