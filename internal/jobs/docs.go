// Package jobs provides scheduled background tasks for the escrow service.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through
// JobManager:
//
//  1. PaymentSettlementJob runs every second and settles simulated
//     payments whose delay has elapsed, dispatching the pay-advance or
//     pay-final command for each.
//  2. DeadlineReminderJob runs every minute and notifies the vendor the
//     first time an in-production order runs past its deadline.
//
// Usage:
//
//	jobManager := jobs.NewJobManager(processor, payAdvanceHandler, payFinalHandler, remindHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// A payment that can no longer be applied (the order moved on while it
// was in flight) is discarded and logged rather than retried.
package jobs
