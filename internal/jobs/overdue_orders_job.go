package jobs

import (
	"context"
	"log/slog"
	"time"

	"albarans/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueOrdersJob periodically reports delivery notes whose target delivery
// date has passed without the note reaching a terminal status. The job is
// read-only; it never mutates orders.
type OverdueOrdersJob struct {
	handler queries.GetOverdueOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
	now     func() time.Time
}

// NewOverdueOrdersJob creates a job that checks for overdue delivery notes
// once a minute.
func NewOverdueOrdersJob(handler queries.GetOverdueOrdersQueryHandler, logger *slog.Logger) *OverdueOrdersJob {
	return &OverdueOrdersJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_orders_job"),
		now:     time.Now,
	}
}

// Start begins the overdue check, running at the top of every minute.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue orders job started (running every minute)")
	return nil
}

// Stop stops the overdue check.
func (j *OverdueOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue orders job stopped")
}

func (j *OverdueOrdersJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetOverdueOrdersQuery(j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue orders job failed to build query", "error", err)
		return
	}

	overdue, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue orders job failed", "error", err)
		return
	}

	for _, summary := range overdue {
		j.logger.WarnContext(ctx, "Delivery note is overdue",
			"number", summary.Number,
			"status", summary.Status,
			"delivery_date", summary.DeliveryDate,
		)
	}
}
