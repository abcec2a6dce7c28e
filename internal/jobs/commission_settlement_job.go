package jobs

import (
	"context"
	"log/slog"

	"github.com/Cientista-Avogadro/docampo/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CommissionSettlementJob manages the scheduled settlement of delivery
// commissions. Runs every minute to pay out intermediaries of completed
// deliveries whose commission is still outstanding.
type CommissionSettlementJob struct {
	handler commands.SettleCommissionsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCommissionSettlementJob creates a new job for settling commissions.
// Uses SettleCommissionsCommandHandler to process outstanding commissions
// once a minute.
func NewCommissionSettlementJob(handler commands.SettleCommissionsCommandHandler, logger *slog.Logger) *CommissionSettlementJob {
	return &CommissionSettlementJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "commission_settlement_job"),
	}
}

// Start begins the commission settlement job to run at the top of every minute.
func (j *CommissionSettlementJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSettleCommissionsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Unsettled orders stay in the feed and are retried next tick
			j.logger.ErrorContext(ctx, "Commission settlement job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Commission settlement job started (running every minute)")
	return nil
}

// Stop stops the commission settlement job.
func (j *CommissionSettlementJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Commission settlement job stopped")
}
