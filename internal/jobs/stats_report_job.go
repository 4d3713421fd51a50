package jobs

import (
	"context"
	"log/slog"

	"instagrow/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatsReportJob periodically logs the order counters so operators can follow
// store activity without polling the admin API.
type StatsReportJob struct {
	handler queries.GetStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatsReportJob creates a job that reports stats once per minute.
func NewStatsReportJob(handler queries.GetStatsQueryHandler, logger *slog.Logger) *StatsReportJob {
	return &StatsReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "stats_report_job"),
	}
}

// Start begins the stats report job.
func (j *StatsReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		stats, handleErr := j.handler.Handle(ctx, queries.NewGetStatsQuery())
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stats report job failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Store stats",
			"total_orders", stats.TotalOrders,
			"pending_orders", stats.PendingOrders,
			"completed_orders", stats.CompletedOrders,
			"total_revenue", stats.TotalRevenue.String(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats report job started (running every minute)")
	return nil
}

// Stop stops the stats report job.
func (j *StatsReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats report job stopped")
}
