package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// ChangeDriverAvailabilityCommandHandler handles the business logic for
// availability toggling. Setting the current value again is a no-op success.
type ChangeDriverAvailabilityCommandHandler struct {
	registry ports.DriverRegistry
}

// NewChangeDriverAvailabilityCommandHandler creates a handler for availability
// changes.
func NewChangeDriverAvailabilityCommandHandler(registry ports.DriverRegistry) ChangeDriverAvailabilityCommandHandler {
	return ChangeDriverAvailabilityCommandHandler{
		registry: registry,
	}
}

// Handle processes the availability change command.
func (h *ChangeDriverAvailabilityCommandHandler) Handle(_ context.Context, cmd ChangeDriverAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.registry.SetAvailability(cmd.DriverID(), cmd.Available())
}
