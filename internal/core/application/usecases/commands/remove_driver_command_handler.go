package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// RemoveDriverCommandHandler handles the business logic for driver removal.
type RemoveDriverCommandHandler struct {
	registry ports.DriverRegistry
}

// NewRemoveDriverCommandHandler creates a handler for driver removal.
func NewRemoveDriverCommandHandler(registry ports.DriverRegistry) RemoveDriverCommandHandler {
	return RemoveDriverCommandHandler{
		registry: registry,
	}
}

// Handle processes the driver removal command.
func (h *RemoveDriverCommandHandler) Handle(_ context.Context, cmd RemoveDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.registry.Remove(cmd.DriverID())
}
