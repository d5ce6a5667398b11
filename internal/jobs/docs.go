// Package jobs provides scheduled background tasks for the marketplace engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the engine runs without operator input.
//
// # Available Jobs
//
// 1. PayoutGenerationJob - Runs daily to create payout records for drivers with pending earnings
// 2. AdvisoryDigestJob - Runs periodically to log the operational advisory summary
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(
//		generatePayoutsHandler, notificationSummaryHandler,
//		payment.MethodEcocash, payoutSchedule, digestSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs take six-field cron expressions (with a seconds field) from the
// application configuration, so deployments tune frequency without a rebuild.
//
// # Error Handling
//
// - Both jobs log failures and keep their schedule; one bad run never stops the job
// - Failed job starts will stop any already running jobs
package jobs
