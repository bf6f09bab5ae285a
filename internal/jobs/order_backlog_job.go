package jobs

import (
	"context"
	"log/slog"

	"fastdelivery/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderBacklogJob periodically reports how many orders are still waiting for
// approval. It is read-only: the count feeds the operational log, nothing in
// the system reacts to it.
type OrderBacklogJob struct {
	handler queries.GetOrderBacklogQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderBacklogJob creates a backlog reporter that runs once a minute.
func NewOrderBacklogJob(handler queries.GetOrderBacklogQueryHandler, logger *slog.Logger) *OrderBacklogJob {
	return &OrderBacklogJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_backlog_job"),
	}
}

// Start schedules the backlog report.
func (j *OrderBacklogJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", func() {
		ctx := context.Background()

		count, err := j.handler.Handle(ctx, queries.NewGetOrderBacklogQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Order backlog report failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Order backlog", "pending_orders", count)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog job started (running every minute)")
	return nil
}

// Stop stops the backlog reporter.
func (j *OrderBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order backlog job stopped")
}
