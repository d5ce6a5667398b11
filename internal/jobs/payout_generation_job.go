package jobs

import (
	"context"
	"log/slog"
	"time"

	"courierops/internal/core/application/usecases/commands"
	"courierops/internal/core/domain/model/payment"

	"github.com/robfig/cron/v3"
)

// PayoutGenerationJob creates payout records for drivers with pending
// earnings. Runs on a daily schedule and covers the previous calendar day.
type PayoutGenerationJob struct {
	handler  commands.GeneratePayoutsCommandHandler
	method   payment.Method
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPayoutGenerationJob creates a new payout generation job. The schedule is
// a six-field cron expression with seconds.
func NewPayoutGenerationJob(
	handler commands.GeneratePayoutsCommandHandler,
	method payment.Method,
	schedule string,
	logger *slog.Logger,
) *PayoutGenerationJob {
	return &PayoutGenerationJob{
		handler:  handler,
		method:   method,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "payout_generation_job"),
	}
}

// Start schedules payout generation.
func (j *PayoutGenerationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		periodEnd := time.Now().UTC().Truncate(24 * time.Hour)
		periodStart := periodEnd.Add(-24 * time.Hour)

		cmd, err := commands.NewGeneratePayoutsCommand(periodStart, periodEnd, j.method)
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build payout generation command", "error", err)
			return
		}

		generated, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Payout generation job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Payout generation completed",
			"generated", generated,
			"periodStart", periodStart,
			"periodEnd", periodEnd,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payout generation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the payout generation job.
func (j *PayoutGenerationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payout generation job stopped")
}
