package jobs

import (
	"context"
	"log/slog"
	"sync"

	"escrow/internal/core/application/usecases/commands"
	"escrow/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DeadlineReminderJob watches in-production orders and notifies the
// vendor once when an order runs past its deadline. Runs every minute.
type DeadlineReminderJob struct {
	handler commands.RemindDeadlinesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger

	mu       sync.Mutex
	reminded map[kernel.UUID]struct{}
}

// NewDeadlineReminderJob creates a job that emits deadline reminders.
func NewDeadlineReminderJob(
	handler commands.RemindDeadlinesCommandHandler,
	logger *slog.Logger,
) *DeadlineReminderJob {
	return &DeadlineReminderJob{
		handler:  handler,
		cron:     cron.New(),
		logger:   logger.With("component", "deadline_reminder_job"),
		reminded: make(map[kernel.UUID]struct{}),
	}
}

// Start begins the reminder job to run every minute.
func (j *DeadlineReminderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Deadline reminder job started (running every minute)")
	return nil
}

// Stop stops the reminder job.
func (j *DeadlineReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Deadline reminder job stopped")
}

func (j *DeadlineReminderJob) run(ctx context.Context) {
	j.mu.Lock()
	alreadyReminded := make([]kernel.UUID, 0, len(j.reminded))
	for id := range j.reminded {
		alreadyReminded = append(alreadyReminded, id)
	}
	j.mu.Unlock()

	cmd, err := commands.NewRemindDeadlinesCommand(alreadyReminded)
	if err != nil {
		j.logger.ErrorContext(ctx, "Deadline reminder command rejected", "error", err)
		return
	}

	reminded, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Deadline reminder job failed", "error", err)
		return
	}

	if len(reminded) == 0 {
		return
	}

	j.mu.Lock()
	for _, id := range reminded {
		j.reminded[id] = struct{}{}
	}
	j.mu.Unlock()

	j.logger.InfoContext(ctx, "Deadline reminders sent", "count", len(reminded))
}
