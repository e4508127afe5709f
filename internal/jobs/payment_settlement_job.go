package jobs

import (
	"context"
	"log/slog"
	"time"

	"escrow/internal/adapters/out/paymentsim"
	"escrow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentSettlementJob settles simulated payments that have run their
// delay. Runs every second, dispatching the matching lifecycle command
// for each due payment.
type PaymentSettlementJob struct {
	processor      *paymentsim.Processor
	advanceHandler commands.PayAdvanceCommandHandler
	finalHandler   commands.PayFinalCommandHandler
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewPaymentSettlementJob creates a job that drives payment settlement.
func NewPaymentSettlementJob(
	processor *paymentsim.Processor,
	advanceHandler commands.PayAdvanceCommandHandler,
	finalHandler commands.PayFinalCommandHandler,
	logger *slog.Logger,
) *PaymentSettlementJob {
	return &PaymentSettlementJob{
		processor:      processor,
		advanceHandler: advanceHandler,
		finalHandler:   finalHandler,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "payment_settlement_job"),
	}
}

// Start begins the settlement job to run every second.
func (j *PaymentSettlementJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.settleDue(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment settlement job started (running every second)")
	return nil
}

// Stop stops the settlement job.
func (j *PaymentSettlementJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment settlement job stopped")
}

func (j *PaymentSettlementJob) settleDue(ctx context.Context) {
	for _, payment := range j.processor.Due(time.Now().UTC()) {
		if err := j.dispatch(ctx, payment); err != nil {
			// An unapplicable payment is dropped, not retried; the order
			// has moved on and a later retry could never succeed.
			j.processor.Discard(payment.OrderID, payment.Kind)
			j.logger.ErrorContext(ctx, "Payment could not be applied",
				"order_id", payment.OrderID.String(),
				"kind", string(payment.Kind),
				"error", err,
			)
			continue
		}

		j.processor.Settle(payment.OrderID, payment.Kind)
	}
}

func (j *PaymentSettlementJob) dispatch(ctx context.Context, payment paymentsim.Payment) error {
	switch payment.Kind {
	case paymentsim.KindAdvance:
		cmd, err := commands.NewPayAdvanceCommand(payment.OrderID)
		if err != nil {
			return err
		}
		return j.advanceHandler.Handle(ctx, cmd)
	case paymentsim.KindFinal:
		cmd, err := commands.NewPayFinalCommand(payment.OrderID)
		if err != nil {
			return err
		}
		return j.finalHandler.Handle(ctx, cmd)
	}

	return paymentsim.ErrKindIsInvalid
}
