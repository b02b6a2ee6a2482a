package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// FleetReportJob periodically logs fleet occupancy so operators can watch
// registry state without querying the API. Runs every 30 seconds.
type FleetReportJob struct {
	registry ports.DriverRegistry
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewFleetReportJob creates a new job for fleet state reporting.
func NewFleetReportJob(registry ports.DriverRegistry, logger *slog.Logger) *FleetReportJob {
	return &FleetReportJob{
		registry: registry,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "fleet_report_job"),
	}
}

// Start begins the fleet report job to run every 30 seconds.
func (j *FleetReportJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		snapshot := j.registry.Snapshot()
		available := 0
		for i := range snapshot {
			if snapshot[i].IsAvailable() {
				available++
			}
		}

		j.logger.InfoContext(ctx, "Fleet report",
			"grid", j.registry.Grid().String(),
			"drivers", len(snapshot),
			"available", available,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fleet report job started (running every 30 seconds)")
	return nil
}

// Stop stops the fleet report job.
func (j *FleetReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Fleet report job stopped")
}
