package jobs

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DriverMovementJob simulates fleet motion. Runs every second and walks each
// available driver one random step on the grid, so dispatch queries against a
// development instance see changing positions.
type DriverMovementJob struct {
	registry ports.DriverRegistry
	handler  commands.RelocateDriverCommandHandler
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDriverMovementJob creates a new job for simulated driver movement.
// Uses RelocateDriverCommandHandler so simulated moves take the same validated
// path as API-driven moves.
func NewDriverMovementJob(
	registry ports.DriverRegistry,
	handler commands.RelocateDriverCommandHandler,
	logger *slog.Logger,
) *DriverMovementJob {
	return &DriverMovementJob{
		registry: registry,
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "driver_movement_job"),
	}
}

// Start begins the driver movement job to run every second.
func (j *DriverMovementJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.moveDrivers(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver movement job started (running every second)")
	return nil
}

// Stop stops the driver movement job.
func (j *DriverMovementJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver movement job stopped")
}

func (j *DriverMovementJob) moveDrivers(ctx context.Context) {
	for _, d := range j.registry.Snapshot() {
		if !d.IsAvailable() {
			continue
		}

		target, ok := randomStep(d.Location())
		if !ok {
			continue
		}

		cmd, err := commands.NewRelocateDriverCommand(d.ID(), target)
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build relocate command", "driver", d.ID(), "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Collisions with other drivers and steps off the grid are
			// expected outcomes of a random walk, not system failures.
			if errors.Is(err, driver.ErrCellOccupied) || errors.Is(err, errs.ErrValueIsOutOfRange) {
				j.logger.DebugContext(ctx, "Simulated step rejected", "driver", d.ID(), "target", target.String())
				continue
			}
			j.logger.ErrorContext(ctx, "Driver movement job failed", "driver", d.ID(), "error", err)
		}
	}
}

// randomStep picks one of the four unit moves from location. Returns false
// when the step would leave the coordinate space entirely; steps that land
// outside the grid are left for the registry to reject.
func randomStep(location kernel.Location) (kernel.Location, bool) {
	x, y := location.X(), location.Y()

	switch rand.IntN(4) {
	case 0:
		x++
	case 1:
		x--
	case 2:
		y++
	default:
		y--
	}

	target, err := kernel.NewLocation(x, y)
	if err != nil {
		return kernel.Location{}, false
	}
	return target, true
}
