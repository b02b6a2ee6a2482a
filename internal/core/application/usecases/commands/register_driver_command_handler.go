package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// RegisterDriverCommandHandler handles the business logic for driver
// registration. The registry rejects duplicate identities, out-of-grid
// locations and occupied cells, so a failed registration leaves no trace.
type RegisterDriverCommandHandler struct {
	registry ports.DriverRegistry
}

// NewRegisterDriverCommandHandler creates a handler for driver registration.
func NewRegisterDriverCommandHandler(registry ports.DriverRegistry) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		registry: registry,
	}
}

// Handle processes the driver registration command.
func (h *RegisterDriverCommandHandler) Handle(_ context.Context, cmd RegisterDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.registry.Add(cmd.DriverID(), cmd.Location())
}
