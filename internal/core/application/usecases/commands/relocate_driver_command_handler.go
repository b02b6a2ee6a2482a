package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// RelocateDriverCommandHandler handles the business logic for driver movement.
// The registry applies the move atomically: a rejected target leaves the
// driver's position and the occupancy index unchanged.
type RelocateDriverCommandHandler struct {
	registry ports.DriverRegistry
}

// NewRelocateDriverCommandHandler creates a handler for driver movement.
func NewRelocateDriverCommandHandler(registry ports.DriverRegistry) RelocateDriverCommandHandler {
	return RelocateDriverCommandHandler{
		registry: registry,
	}
}

// Handle processes the driver relocation command.
func (h *RelocateDriverCommandHandler) Handle(_ context.Context, cmd RelocateDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.registry.Relocate(cmd.DriverID(), cmd.Target())
}
