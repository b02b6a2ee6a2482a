package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	driverMovementJob *DriverMovementJob
	fleetReportJob    *FleetReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// movementEnabled controls the random-walk simulation; the fleet report job
// always runs.
func NewJobManager(
	registry ports.DriverRegistry,
	relocateHandler commands.RelocateDriverCommandHandler,
	movementEnabled bool,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{
		fleetReportJob: NewFleetReportJob(registry, logger),
	}
	if movementEnabled {
		jm.driverMovementJob = NewDriverMovementJob(registry, relocateHandler, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.fleetReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start fleet report job: %w", err)
	}

	if jm.driverMovementJob != nil {
		if err := jm.driverMovementJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.fleetReportJob.Stop()
			return fmt.Errorf("failed to start driver movement job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.driverMovementJob != nil {
		jm.driverMovementJob.Stop()
	}
	jm.fleetReportJob.Stop()
}
