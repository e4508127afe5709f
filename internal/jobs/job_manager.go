package jobs

import (
	"fmt"
	"log/slog"

	"escrow/internal/adapters/out/paymentsim"
	"escrow/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	paymentSettlementJob *PaymentSettlementJob
	deadlineReminderJob  *DeadlineReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	processor *paymentsim.Processor,
	payAdvanceHandler commands.PayAdvanceCommandHandler,
	payFinalHandler commands.PayFinalCommandHandler,
	remindDeadlinesHandler commands.RemindDeadlinesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		paymentSettlementJob: NewPaymentSettlementJob(processor, payAdvanceHandler, payFinalHandler, logger),
		deadlineReminderJob:  NewDeadlineReminderJob(remindDeadlinesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.paymentSettlementJob.Start(); err != nil {
		return fmt.Errorf("failed to start payment settlement job: %w", err)
	}

	if err := jm.deadlineReminderJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.paymentSettlementJob.Stop()
		return fmt.Errorf("failed to start deadline reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deadlineReminderJob.Stop()
	jm.paymentSettlementJob.Stop()
}
