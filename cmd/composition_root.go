package cmd

import (
	"fmt"
	"log/slog"

	"dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/inmem/driverregistry"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
)

// CompositionRoot wires the grid, registry and dispatcher once and hands out
// handlers built on top of them. All handlers share the same registry.
type CompositionRoot struct {
	config     Config
	registry   ports.DriverRegistry
	dispatcher *services.Dispatcher
}

// NewCompositionRoot builds the object graph from configuration.
func NewCompositionRoot(config Config) (*CompositionRoot, error) {
	grid, err := kernel.NewGrid(
		kernel.Coordinate(config.GridWidth),
		kernel.Coordinate(config.GridHeight),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid grid configuration: %w", err)
	}

	strategy, err := services.ParseStrategy(config.DispatchStrategy)
	if err != nil {
		return nil, fmt.Errorf("invalid dispatch strategy: %w", err)
	}

	registry, err := driverregistry.New(grid)
	if err != nil {
		return nil, err
	}

	dispatcher, err := services.NewDispatcher(registry, strategy)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:     config,
		registry:   registry,
		dispatcher: dispatcher,
	}, nil
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	return commands.NewRegisterDriverCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateRelocateDriverCommandHandler() commands.RelocateDriverCommandHandler {
	return commands.NewRelocateDriverCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateChangeDriverAvailabilityCommandHandler() commands.ChangeDriverAvailabilityCommandHandler {
	return commands.NewChangeDriverAvailabilityCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateRemoveDriverCommandHandler() commands.RemoveDriverCommandHandler {
	return commands.NewRemoveDriverCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateFindNearestDriversQueryHandler() queries.FindNearestDriversQueryHandler {
	return queries.NewFindNearestDriversQueryHandler(c.dispatcher)
}

// CreateHTTPServer assembles the REST adapter over the shared handlers.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateRegisterDriverCommandHandler(),
		c.CreateRelocateDriverCommandHandler(),
		c.CreateChangeDriverAvailabilityCommandHandler(),
		c.CreateRemoveDriverCommandHandler(),
		c.CreateGetAllDriversQueryHandler(),
		c.CreateFindNearestDriversQueryHandler(),
		c.config.DefaultK,
	)
}

// CreateJobManager assembles the background jobs over the shared registry.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.registry,
		c.CreateRelocateDriverCommandHandler(),
		c.config.MovementSimulationEnabled,
		logger,
	)
}
